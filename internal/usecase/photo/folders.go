package photo

import (
	"context"

	"github.com/BruksfildServices01/clinica-api/internal/domain/patient"
	domain "github.com/BruksfildServices01/clinica-api/internal/domain/photo"
	"github.com/BruksfildServices01/clinica-api/internal/httperr"
	"github.com/BruksfildServices01/clinica-api/internal/logger"
)

// Folders resolve em qual pasta ficam as fotos de um paciente.
type Folders struct {
	patients patient.Repository
	store    domain.Store
	log      *logger.Logger
}

func NewFolders(patients patient.Repository, store domain.Store, log *logger.Logger) *Folders {
	return &Folders{
		patients: patients,
		store:    store,
		log:      log.With("component", "PhotoFolders"),
	}
}

// Resolve devolve "{nome} - {cpf}". Sem paciente (ou com o banco fora),
// devolve a pasta só com o CPF: as fotos não podem ficar indisponíveis
// por causa do cadastro.
func (f *Folders) Resolve(ctx context.Context, cpf string) string {
	p, err := f.patients.GetByCPF(ctx, cpf)
	if err != nil {
		if !httperr.IsNotFound(err) {
			f.log.Warn("patient lookup failed, using legacy folder", "cpf", cpf, "error", err)
		}
		return domain.LegacyFolderName(cpf)
	}
	return domain.FolderName(p.Nome, cpf)
}

// ResolveForRead é Resolve, mas aponta para a pasta antiga quando a nova
// ainda não existe.
func (f *Folders) ResolveForRead(ctx context.Context, cpf string) (string, error) {
	folder := f.Resolve(ctx, cpf)
	legacy := domain.LegacyFolderName(cpf)
	if folder == legacy {
		return folder, nil
	}

	ok, err := f.store.FolderExists(ctx, folder)
	if err != nil {
		return "", err
	}
	if ok {
		return folder, nil
	}

	ok, err = f.store.FolderExists(ctx, legacy)
	if err != nil {
		return "", err
	}
	if ok {
		return legacy, nil
	}
	return folder, nil
}

// Locate acha a pasta que contém o arquivo: a atual ou, em seguida, a antiga.
func (f *Folders) Locate(ctx context.Context, cpf, name string) (string, error) {
	candidates := []string{f.Resolve(ctx, cpf)}
	if legacy := domain.LegacyFolderName(cpf); legacy != candidates[0] {
		candidates = append(candidates, legacy)
	}

	for _, folder := range candidates {
		ok, err := f.store.FileExists(ctx, folder, name)
		if err != nil {
			return "", err
		}
		if ok {
			return folder, nil
		}
	}
	return "", domain.ErrNotFound
}

// Merge move arquivo a arquivo de src para dst, sem sobrescrever o que já
// existe em dst. src é removida se ficar vazia.
func (f *Folders) Merge(ctx context.Context, src, dst string) (moved, skipped int, err error) {
	if err := f.store.EnsureFolder(ctx, dst); err != nil {
		return 0, 0, err
	}

	names, err := f.store.List(ctx, src)
	if err != nil {
		return 0, 0, err
	}

	for _, name := range names {
		exists, err := f.store.FileExists(ctx, dst, name)
		if err != nil {
			return moved, skipped, err
		}
		if exists {
			skipped++
			continue
		}
		if err := f.store.MoveFile(ctx, src, dst, name); err != nil {
			return moved, skipped, err
		}
		moved++
	}

	if _, err := f.store.RemoveFolderIfEmpty(ctx, src); err != nil {
		return moved, skipped, err
	}
	return moved, skipped, nil
}
