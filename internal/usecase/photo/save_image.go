package photo

import (
	"context"
	"strings"
	"time"

	domain "github.com/BruksfildServices01/clinica-api/internal/domain/photo"
	"github.com/BruksfildServices01/clinica-api/internal/httperr"
	"github.com/BruksfildServices01/clinica-api/internal/logger"
)

var ErrMissingImageFields = httperr.Validation("missing_fields", "CPF e imagem são obrigatórios.")

type SaveImageInput struct {
	CPF       string
	Image     string // data URI
	Timestamp string // opcional
}

type SaveImage struct {
	folders *Folders
	store   domain.Store
	loc     *time.Location
	now     func() time.Time
	log     *logger.Logger
}

func NewSaveImage(folders *Folders, store domain.Store, loc *time.Location, log *logger.Logger) *SaveImage {
	return &SaveImage{
		folders: folders,
		store:   store,
		loc:     loc,
		now:     time.Now,
		log:     log.With("component", "SaveImage"),
	}
}

// Execute grava a foto e devolve o nome do arquivo. Se ainda existir a pasta
// antiga (só CPF), as fotos dela são trazidas para a pasta atual antes.
func (uc *SaveImage) Execute(ctx context.Context, in SaveImageInput) (string, error) {
	if in.CPF == "" || strings.TrimSpace(in.Image) == "" {
		return "", ErrMissingImageFields
	}

	data, err := domain.DecodeDataURI(in.Image)
	if err != nil {
		return "", err
	}

	folder := uc.folders.Resolve(ctx, in.CPF)

	if legacy := domain.LegacyFolderName(in.CPF); legacy != folder {
		exists, err := uc.store.FolderExists(ctx, legacy)
		if err != nil {
			return "", err
		}
		if exists {
			moved, skipped, err := uc.folders.Merge(ctx, legacy, folder)
			if err != nil {
				// migração é preguiçosa: tenta de novo no próximo save
				uc.log.Warn("legacy folder migration failed", "cpf", in.CPF, "error", err)
			} else {
				uc.log.Info("legacy folder migrated", "cpf", in.CPF, "moved", moved, "skipped", skipped)
			}
		}
	}

	if err := uc.store.EnsureFolder(ctx, folder); err != nil {
		return "", err
	}

	ts := strings.TrimSpace(in.Timestamp)
	if ts == "" {
		ts = domain.Timestamp(uc.now().In(uc.loc))
	}
	name := domain.FileName(ts)

	if err := uc.store.Write(ctx, folder, name, data); err != nil {
		return "", err
	}
	return name, nil
}
