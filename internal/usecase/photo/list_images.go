package photo

import (
	"context"
	"sort"
	"strings"
	"time"

	domain "github.com/BruksfildServices01/clinica-api/internal/domain/photo"
	"github.com/BruksfildServices01/clinica-api/internal/httperr"
)

var ErrMissingCPF = httperr.Validation("missing_cpf", "CPF é obrigatório.")

type Image struct {
	DataURI      string
	Display      string
	TimestampISO string
	takenAt      time.Time
	parsed       bool
}

type ListImages struct {
	folders *Folders
	store   domain.Store
	loc     *time.Location
}

func NewListImages(folders *Folders, store domain.Store, loc *time.Location) *ListImages {
	return &ListImages{folders: folders, store: store, loc: loc}
}

// Execute devolve as fotos mais recentes primeiro. Arquivos cujo nome não
// é um timestamp aparecem no fim, com o nome cru como texto.
func (uc *ListImages) Execute(ctx context.Context, cpf string) ([]Image, error) {
	if cpf == "" {
		return nil, ErrMissingCPF
	}

	folder, err := uc.folders.ResolveForRead(ctx, cpf)
	if err != nil {
		return nil, err
	}

	names, err := uc.store.List(ctx, folder)
	if err != nil {
		return nil, err
	}

	out := make([]Image, 0, len(names))
	for _, name := range names {
		if !strings.HasSuffix(strings.ToLower(name), domain.Extension) {
			continue
		}
		data, err := uc.store.Read(ctx, folder, name)
		if err != nil {
			return nil, err
		}

		img := Image{DataURI: domain.EncodeDataURI(data)}
		img.Display, img.TimestampISO = domain.Describe(name, uc.loc)
		if t, _, err := domain.ParseFileName(name, uc.loc); err == nil {
			img.takenAt = t
			img.parsed = true
		}
		out = append(out, img)
	}

	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.parsed != b.parsed {
			return a.parsed
		}
		if a.parsed {
			return a.takenAt.After(b.takenAt)
		}
		return a.TimestampISO > b.TimestampISO
	})
	return out, nil
}
