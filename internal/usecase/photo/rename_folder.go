package photo

import (
	"context"
	"strings"

	domain "github.com/BruksfildServices01/clinica-api/internal/domain/photo"
	"github.com/BruksfildServices01/clinica-api/internal/logger"
)

const caseRenameSuffix = ".renomeando"

// RenameFolder acompanha a troca de nome do paciente na pasta de fotos.
type RenameFolder struct {
	folders *Folders
	store   domain.Store
	log     *logger.Logger
}

func NewRenameFolder(folders *Folders, store domain.Store, log *logger.Logger) *RenameFolder {
	return &RenameFolder{
		folders: folders,
		store:   store,
		log:     log.With("component", "RenamePhotoFolder"),
	}
}

// Execute não faz nada se o nome não mudou ou se não há pasta para mover.
// Se a nova já existir, junta arquivo a arquivo; senão renomeia a pasta.
func (uc *RenameFolder) Execute(ctx context.Context, cpf, oldName, newName string) error {
	if strings.TrimSpace(oldName) == strings.TrimSpace(newName) {
		return nil
	}

	src := domain.FolderName(oldName, cpf)
	dst := domain.FolderName(newName, cpf)
	if src == dst {
		return nil
	}

	exists, err := uc.store.FolderExists(ctx, src)
	if err != nil {
		return err
	}
	if !exists {
		// cadastro anterior ao esquema "{nome} - {cpf}": leva a pasta só com CPF
		src = domain.LegacyFolderName(cpf)
		exists, err = uc.store.FolderExists(ctx, src)
		if err != nil {
			return err
		}
		if !exists || src == dst {
			return nil
		}
	}

	if strings.EqualFold(src, dst) {
		return uc.renameCaseOnly(ctx, cpf, src, dst)
	}

	dstExists, err := uc.store.FolderExists(ctx, dst)
	if err != nil {
		return err
	}
	if dstExists {
		moved, skipped, err := uc.folders.Merge(ctx, src, dst)
		if err != nil {
			return err
		}
		uc.log.Info("photo folders merged", "cpf", cpf, "moved", moved, "skipped", skipped)
		return nil
	}

	if err := uc.store.RenameFolder(ctx, src, dst); err != nil {
		return err
	}
	uc.log.Info("photo folder renamed", "cpf", cpf)
	return nil
}

// renameCaseOnly troca só maiúsculas/minúsculas. Em sistema de arquivos que
// ignora caixa, dst "existe" enquanto src existir, então passa por uma pasta
// temporária antes.
func (uc *RenameFolder) renameCaseOnly(ctx context.Context, cpf, src, dst string) error {
	tmp := dst + caseRenameSuffix
	if err := uc.store.RenameFolder(ctx, src, tmp); err != nil {
		return err
	}

	dstExists, err := uc.store.FolderExists(ctx, dst)
	if err == nil && dstExists {
		_, _, err = uc.folders.Merge(ctx, tmp, dst)
	} else if err == nil {
		err = uc.store.RenameFolder(ctx, tmp, dst)
	}
	if err != nil {
		if rbErr := uc.store.RenameFolder(ctx, tmp, src); rbErr != nil {
			uc.log.Error("photo folder left in temporary name", "cpf", cpf, "folder", tmp, "error", rbErr)
		}
		return err
	}

	uc.log.Info("photo folder renamed", "cpf", cpf, "case_only", true)
	return nil
}
