package models

// Paciente é identificado pelo CPF, gravado só com dígitos.
type Paciente struct {
	CPF            string  `gorm:"column:cpf;primaryKey;size:20" json:"cpf"`
	Nome           string  `gorm:"column:nome;size:150;not null" json:"nome"`
	Telefone       *string `gorm:"column:telefone;size:30" json:"telefone"`
	DataNascimento string  `gorm:"column:data_nascimento;size:10;not null" json:"dataNascimento"`
	Endereco       *string `gorm:"column:endereco;size:255" json:"endereco"`
	Convenio       *string `gorm:"column:convenio;size:100" json:"convenio"`

	Tratamentos []InformacaoTratamento `gorm:"foreignKey:IDPaciente;references:CPF;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	Orcamentos  []Orcamento            `gorm:"foreignKey:IDPaciente;references:CPF;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
}

func (Paciente) TableName() string { return "paciente" }
