package photo

import (
	"context"
	"strings"

	domain "github.com/BruksfildServices01/clinica-api/internal/domain/photo"
	"github.com/BruksfildServices01/clinica-api/internal/httperr"
)

var ErrMissingUpdateFields = httperr.Validation("missing_fields", "CPF, imagem e timestamp_iso são obrigatórios.")

type UpdateImageInput struct {
	CPF          string
	Image        string
	TimestampISO string
}

type UpdateImage struct {
	folders *Folders
	store   domain.Store
}

func NewUpdateImage(folders *Folders, store domain.Store) *UpdateImage {
	return &UpdateImage{folders: folders, store: store}
}

// Execute sobrescreve os bytes mantendo o nome do arquivo.
func (uc *UpdateImage) Execute(ctx context.Context, in UpdateImageInput) error {
	token := strings.TrimSpace(in.TimestampISO)
	if in.CPF == "" || token == "" || strings.TrimSpace(in.Image) == "" {
		return ErrMissingUpdateFields
	}

	data, err := domain.DecodeDataURI(in.Image)
	if err != nil {
		return err
	}

	name := domain.FileName(token)
	folder, err := uc.folders.Locate(ctx, in.CPF, name)
	if err != nil {
		return err
	}
	return uc.store.Write(ctx, folder, name, data)
}
