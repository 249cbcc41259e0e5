package photo

import (
	"context"
	"strings"

	domain "github.com/BruksfildServices01/clinica-api/internal/domain/photo"
	"github.com/BruksfildServices01/clinica-api/internal/httperr"
)

var ErrMissingDeleteFields = httperr.Validation("missing_fields", "CPF e timestamp_iso são obrigatórios.")

type DeleteImage struct {
	folders *Folders
	store   domain.Store
}

func NewDeleteImage(folders *Folders, store domain.Store) *DeleteImage {
	return &DeleteImage{folders: folders, store: store}
}

func (uc *DeleteImage) Execute(ctx context.Context, cpf, timestampISO string) error {
	token := strings.TrimSpace(timestampISO)
	if cpf == "" || token == "" {
		return ErrMissingDeleteFields
	}

	name := domain.FileName(token)
	folder, err := uc.folders.Locate(ctx, cpf, name)
	if err != nil {
		return err
	}
	return uc.store.Remove(ctx, folder, name)
}
