package photo

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/clinica-api/internal/db/dbtest"
	domain "github.com/BruksfildServices01/clinica-api/internal/domain/photo"
	"github.com/BruksfildServices01/clinica-api/internal/infra/photostore"
	"github.com/BruksfildServices01/clinica-api/internal/infra/repository"
	"github.com/BruksfildServices01/clinica-api/internal/logger"
	"github.com/BruksfildServices01/clinica-api/internal/models"
)

type fixture struct {
	base    string
	patient *repository.PatientGormRepository
	folders *Folders
	save    *SaveImage
	list    *ListImages
	update  *UpdateImage
	delete  *DeleteImage
	rename  *RenameFolder
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	base := t.TempDir()
	store, err := photostore.NewLocalStore(base)
	require.NoError(t, err)

	loc := time.UTC
	log := logger.Nop()
	patients := repository.NewPatientGormRepository(dbtest.New(t))
	folders := NewFolders(patients, store, log)

	return &fixture{
		base:    base,
		patient: patients,
		folders: folders,
		save:    NewSaveImage(folders, store, loc, log),
		list:    NewListImages(folders, store, loc),
		update:  NewUpdateImage(folders, store),
		delete:  NewDeleteImage(folders, store),
		rename:  NewRenameFolder(folders, store, log),
	}
}

func (f *fixture) register(t *testing.T, cpf, nome string) {
	t.Helper()
	require.NoError(t, f.patient.Create(context.Background(), &models.Paciente{CPF: cpf, Nome: nome, DataNascimento: "1980-01-01"}))
}

func (f *fixture) writeRaw(t *testing.T, folder, name string, data []byte) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Join(f.base, folder), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(f.base, folder, name), data, 0o644))
}

func (f *fixture) filesIn(t *testing.T, folder string) []string {
	t.Helper()
	entries, err := os.ReadDir(filepath.Join(f.base, folder))
	if os.IsNotExist(err) {
		return nil
	}
	require.NoError(t, err)
	var out []string
	for _, e := range entries {
		out = append(out, e.Name())
	}
	return out
}

func (f *fixture) folderExists(folder string) bool {
	_, err := os.Stat(filepath.Join(f.base, folder))
	return err == nil
}

func pngBytes(t *testing.T, shade uint8) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 1, 1))
	img.Set(0, 0, color.RGBA{R: shade, A: 255})
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

// ==================================================
// Save
// ==================================================

func TestSaveImage_UsesNamedFolder(t *testing.T) {
	f := newFixture(t)
	f.register(t, "12345678900", "João/Silva")

	name, err := f.save.Execute(context.Background(), SaveImageInput{
		CPF:       "12345678900",
		Image:     domain.EncodeDataURI(pngBytes(t, 1)),
		Timestamp: "2024-01-15T10:30:45.123456",
	})
	require.NoError(t, err)
	assert.Equal(t, "2024-01-15T10-30-45.123456.png", name)
	assert.Equal(t, []string{name}, f.filesIn(t, "João-Silva - 12345678900"))
}

func TestSaveImage_DefaultTimestamp(t *testing.T) {
	f := newFixture(t)
	f.register(t, "1", "Ana")
	f.save.now = func() time.Time { return time.Date(2024, 3, 2, 9, 8, 7, 654321000, time.UTC) }

	name, err := f.save.Execute(context.Background(), SaveImageInput{CPF: "1", Image: domain.EncodeDataURI(pngBytes(t, 1))})
	require.NoError(t, err)
	assert.Equal(t, "2024-03-02T09-08-07.654321.png", name)
}

func TestSaveImage_UnknownPatientFallsBackToCPF(t *testing.T) {
	f := newFixture(t)

	_, err := f.save.Execute(context.Background(), SaveImageInput{
		CPF: "999", Image: domain.EncodeDataURI(pngBytes(t, 1)), Timestamp: "2024-01-01T00:00:00",
	})
	require.NoError(t, err)
	assert.Len(t, f.filesIn(t, "999"), 1)
}

func TestSaveImage_MigratesLegacyFolder(t *testing.T) {
	f := newFixture(t)
	f.register(t, "1", "Ana")
	f.writeRaw(t, "1", "2023-05-05T10-00-00.png", pngBytes(t, 2))

	_, err := f.save.Execute(context.Background(), SaveImageInput{
		CPF: "1", Image: domain.EncodeDataURI(pngBytes(t, 3)), Timestamp: "2024-01-01T00:00:00",
	})
	require.NoError(t, err)

	assert.False(t, f.folderExists("1"))
	assert.ElementsMatch(t,
		[]string{"2023-05-05T10-00-00.png", "2024-01-01T00-00-00.png"},
		f.filesIn(t, "Ana - 1"))
}

func TestSaveImage_Validation(t *testing.T) {
	f := newFixture(t)
	_, err := f.save.Execute(context.Background(), SaveImageInput{CPF: "1"})
	assert.ErrorIs(t, err, ErrMissingImageFields)

	_, err = f.save.Execute(context.Background(), SaveImageInput{CPF: "1", Image: "data:image/png;base64,bm90LWFuLWltYWdl"})
	assert.ErrorIs(t, err, domain.ErrInvalidImage)
}

// ==================================================
// List / Update / Delete
// ==================================================

func TestListImages_NewestFirstAndRoundTrip(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.register(t, "1", "Ana")

	for _, ts := range []string{"2024-01-01T08:00:00", "2024-06-01T08:00:00.5", "2024-03-01T08:00:00Z"} {
		_, err := f.save.Execute(ctx, SaveImageInput{CPF: "1", Image: domain.EncodeDataURI(pngBytes(t, 1)), Timestamp: ts})
		require.NoError(t, err)
	}
	f.writeRaw(t, "Ana - 1", "foto-antiga.png", pngBytes(t, 9))

	images, err := f.list.Execute(ctx, "1")
	require.NoError(t, err)
	require.Len(t, images, 4)

	assert.Equal(t, "2024-06-01T08:00:00.5", images[0].TimestampISO)
	assert.Equal(t, "01/06/2024 08:00:00", images[0].Display)
	assert.Equal(t, "2024-03-01T08:00:00Z", images[1].TimestampISO)
	assert.Equal(t, "2024-01-01T08:00:00", images[2].TimestampISO)
	assert.Equal(t, "foto-antiga.png", images[3].Display)

	newBytes := pngBytes(t, 200)
	require.NoError(t, f.update.Execute(ctx, UpdateImageInput{
		CPF: "1", Image: domain.EncodeDataURI(newBytes), TimestampISO: images[1].TimestampISO,
	}))
	got, err := os.ReadFile(filepath.Join(f.base, "Ana - 1", "2024-03-01T08-00-00Z.png"))
	require.NoError(t, err)
	assert.Equal(t, newBytes, got)

	require.NoError(t, f.delete.Execute(ctx, "1", images[3].TimestampISO))
	require.NoError(t, f.delete.Execute(ctx, "1", images[0].TimestampISO))
	assert.Len(t, f.filesIn(t, "Ana - 1"), 2)
}

func TestListImages_ReadsLegacyFolder(t *testing.T) {
	f := newFixture(t)
	f.register(t, "1", "Ana")
	f.writeRaw(t, "1", "2023-05-05T10-00-00.png", pngBytes(t, 2))

	images, err := f.list.Execute(context.Background(), "1")
	require.NoError(t, err)
	require.Len(t, images, 1)
	assert.Equal(t, "2023-05-05T10:00:00", images[0].TimestampISO)

	require.NoError(t, f.delete.Execute(context.Background(), "1", images[0].TimestampISO))
	assert.Empty(t, f.filesIn(t, "1"))
}

func TestUpdateDeleteImage_NotFound(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.register(t, "1", "Ana")

	err := f.update.Execute(ctx, UpdateImageInput{CPF: "1", Image: domain.EncodeDataURI(pngBytes(t, 1)), TimestampISO: "2024-01-01T00:00:00"})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	err = f.delete.Execute(ctx, "1", "2024-01-01T00:00:00")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	assert.ErrorIs(t, f.delete.Execute(ctx, "1", ""), ErrMissingDeleteFields)
}

// ==================================================
// Rename
// ==================================================

func TestRenameFolder_MovesWholeFolder(t *testing.T) {
	f := newFixture(t)
	f.writeRaw(t, "Ana - 1", "a.png", pngBytes(t, 1))
	f.writeRaw(t, "Ana - 1", "b.png", pngBytes(t, 2))

	require.NoError(t, f.rename.Execute(context.Background(), "1", "Ana", "Ana Souza"))

	assert.False(t, f.folderExists("Ana - 1"))
	assert.ElementsMatch(t, []string{"a.png", "b.png"}, f.filesIn(t, "Ana Souza - 1"))
}

func TestRenameFolder_MergesIntoExistingFolder(t *testing.T) {
	f := newFixture(t)
	f.writeRaw(t, "Ana - 1", "a.png", pngBytes(t, 1))
	f.writeRaw(t, "Ana Souza - 1", "b.png", pngBytes(t, 2))

	require.NoError(t, f.rename.Execute(context.Background(), "1", "Ana", "Ana Souza"))

	assert.False(t, f.folderExists("Ana - 1"))
	assert.ElementsMatch(t, []string{"a.png", "b.png"}, f.filesIn(t, "Ana Souza - 1"))
}

func TestRenameFolder_MergeKeepsDestinationOnCollision(t *testing.T) {
	f := newFixture(t)
	f.writeRaw(t, "Ana - 1", "a.png", []byte("old"))
	f.writeRaw(t, "Ana Souza - 1", "a.png", []byte("new"))

	require.NoError(t, f.rename.Execute(context.Background(), "1", "Ana", "Ana Souza"))

	got, err := os.ReadFile(filepath.Join(f.base, "Ana Souza - 1", "a.png"))
	require.NoError(t, err)
	assert.Equal(t, []byte("new"), got)
	// o que não pôde ser movido fica na pasta antiga
	assert.Equal(t, []string{"a.png"}, f.filesIn(t, "Ana - 1"))
}

func TestRenameFolder_NoopCases(t *testing.T) {
	f := newFixture(t)
	f.writeRaw(t, "Ana - 1", "a.png", pngBytes(t, 1))

	require.NoError(t, f.rename.Execute(context.Background(), "1", "Ana", " Ana "))
	require.NoError(t, f.rename.Execute(context.Background(), "1", "Bia", "Carla"))

	assert.True(t, f.folderExists("Ana - 1"))
	assert.False(t, f.folderExists("Carla - 1"))
}

func TestRenameFolder_PicksUpLegacyFolder(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.register(t, "1", "Ana")
	f.writeRaw(t, "1", "2023-05-05T10-00-00.png", pngBytes(t, 2))

	// o cadastro muda antes do rename, como no fluxo de atualização
	require.NoError(t, f.patient.Update(ctx, &models.Paciente{CPF: "1", Nome: "Ana Souza", DataNascimento: "1980-01-01"}))
	require.NoError(t, f.rename.Execute(ctx, "1", "Ana", "Ana Souza"))

	assert.False(t, f.folderExists("1"))
	images, err := f.list.Execute(ctx, "1")
	require.NoError(t, err)
	require.Len(t, images, 1)
	assert.Equal(t, "2023-05-05T10:00:00", images[0].TimestampISO)
}

// foldingStore imita um disco que ignora maiúsculas/minúsculas nos nomes de pasta.
type foldingStore struct {
	*photostore.LocalStore
	base  string
	moves int
}

func (s *foldingStore) FolderExists(_ context.Context, folder string) (bool, error) {
	entries, err := os.ReadDir(s.base)
	if err != nil {
		return false, err
	}
	for _, e := range entries {
		if e.IsDir() && strings.EqualFold(e.Name(), folder) {
			return true, nil
		}
	}
	return false, nil
}

func (s *foldingStore) MoveFile(ctx context.Context, srcFolder, dstFolder, name string) error {
	s.moves++
	return s.LocalStore.MoveFile(ctx, srcFolder, dstFolder, name)
}

func TestRenameFolder_CaseOnlyChange(t *testing.T) {
	f := newFixture(t)
	f.writeRaw(t, "Ana - 1", "a.png", pngBytes(t, 1))
	f.writeRaw(t, "Ana - 1", "b.png", pngBytes(t, 2))

	require.NoError(t, f.rename.Execute(context.Background(), "1", "Ana", "ANA"))

	assert.False(t, f.folderExists("Ana - 1"))
	assert.False(t, f.folderExists("ANA - 1"+caseRenameSuffix))
	assert.ElementsMatch(t, []string{"a.png", "b.png"}, f.filesIn(t, "ANA - 1"))
}

func TestRenameFolder_CaseOnlyChangeOnCaseInsensitiveDisk(t *testing.T) {
	f := newFixture(t)
	local, err := photostore.NewLocalStore(f.base)
	require.NoError(t, err)
	store := &foldingStore{LocalStore: local, base: f.base}
	log := logger.Nop()
	rename := NewRenameFolder(NewFolders(f.patient, store, log), store, log)

	f.writeRaw(t, "Ana - 1", "a.png", pngBytes(t, 1))
	f.writeRaw(t, "Ana - 1", "b.png", pngBytes(t, 2))

	require.NoError(t, rename.Execute(context.Background(), "1", "Ana", "ANA"))

	// sem a pasta temporária o merge pularia todos os arquivos "nela mesma"
	assert.Zero(t, store.moves)
	assert.False(t, f.folderExists("Ana - 1"))
	assert.ElementsMatch(t, []string{"a.png", "b.png"}, f.filesIn(t, "ANA - 1"))
}
