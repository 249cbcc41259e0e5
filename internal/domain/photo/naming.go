package photo

import (
	"fmt"
	"strings"
	"time"
)

const (
	Extension = ".png"

	displayLayout = "02/01/2006 15:04:05"
	isoLayout     = "2006-01-02T15:04:05.999999999"
)

var folderNameReplacer = strings.NewReplacer(
	"/", "-", `\`, "-", ":", "-", "*", "-", "?", "-",
	`"`, "-", "<", "-", ">", "-", "|", "-",
)

// SanitizeName troca os caracteres proibidos em nomes de pasta por "-".
func SanitizeName(name string) string {
	return strings.TrimSpace(folderNameReplacer.Replace(name))
}

// FolderName é o nome da pasta de fotos do paciente: "{nome} - {cpf}".
func FolderName(name, cpf string) string {
	return fmt.Sprintf("%s - %s", SanitizeName(name), cpf)
}

// LegacyFolderName é o esquema antigo, só o CPF.
func LegacyFolderName(cpf string) string {
	return cpf
}

// FileName converte um timestamp ISO (ou o token já convertido) no nome do arquivo.
func FileName(timestamp string) string {
	name := strings.ReplaceAll(strings.TrimSpace(timestamp), ":", "-")
	if !strings.HasSuffix(name, Extension) {
		name += Extension
	}
	return name
}

// Timestamp devolve o timestamp padrão para uma foto sem timestamp informado.
func Timestamp(now time.Time) string {
	return now.Format("2006-01-02T15:04:05.000000")
}

// ParseFileName reconstrói o instante a partir do nome do arquivo.
// Só os dois primeiros "-" da parte de hora voltam a ser ":", para não
// mexer no resto (fração de segundo, fuso). "Z" final indica UTC; sem ele
// o horário é lido no fuso da clínica.
func ParseFileName(fileName string, loc *time.Location) (time.Time, string, error) {
	stem := strings.TrimSuffix(fileName, Extension)

	datePart, timePart, ok := strings.Cut(stem, "T")
	if !ok {
		return time.Time{}, "", fmt.Errorf("timestamp sem separador T: %q", stem)
	}

	zulu := strings.HasSuffix(timePart, "Z")
	timePart = strings.TrimSuffix(timePart, "Z")
	timePart = strings.Replace(timePart, "-", ":", 2)

	iso := datePart + "T" + timePart
	parseLoc := loc
	if zulu {
		parseLoc = time.UTC
	}
	t, err := time.ParseInLocation(isoLayout, iso, parseLoc)
	if err != nil {
		return time.Time{}, "", err
	}
	if zulu {
		iso += "Z"
	}
	return t, iso, nil
}

// Describe devolve o texto exibido e o token ISO de uma foto. Se o nome
// não puder ser interpretado, exibe o próprio nome do arquivo.
func Describe(fileName string, loc *time.Location) (display, iso string) {
	t, iso, err := ParseFileName(fileName, loc)
	if err != nil {
		return fileName, strings.TrimSuffix(fileName, Extension)
	}
	return t.In(loc).Format(displayLayout), iso
}
