package photo

import (
	"context"

	"github.com/BruksfildServices01/clinica-api/internal/httperr"
)

var ErrNotFound = httperr.NotFound("photo_not_found", "Imagem não encontrada.")

// Store é o espaço de nomes das fotos: pastas com arquivos dentro.
// Não há coordenação entre processos; renomear e gravar ao mesmo tempo na
// mesma pasta pode intercalar.
type Store interface {
	FolderExists(ctx context.Context, folder string) (bool, error)
	EnsureFolder(ctx context.Context, folder string) error

	// List devolve os nomes dos arquivos da pasta (vazio se não existir).
	List(ctx context.Context, folder string) ([]string, error)

	FileExists(ctx context.Context, folder, name string) (bool, error)
	Read(ctx context.Context, folder, name string) ([]byte, error)
	Write(ctx context.Context, folder, name string, data []byte) error
	Remove(ctx context.Context, folder, name string) error

	// MoveFile move um arquivo entre pastas mantendo o nome.
	MoveFile(ctx context.Context, srcFolder, dstFolder, name string) error

	// RenameFolder assume que dst não existe.
	RenameFolder(ctx context.Context, src, dst string) error

	// RemoveFolderIfEmpty devolve true quando a pasta foi removida.
	RemoveFolderIfEmpty(ctx context.Context, folder string) (bool, error)
}
