package models

// InformacaoTratamento é uma anotação clínica. Não há chave substituta:
// a linha é identificada por (id_paciente, epoch_criacao).
type InformacaoTratamento struct {
	IDPaciente   string `gorm:"column:id_paciente;primaryKey;size:20" json:"id_paciente"`
	EpochCriacao int64  `gorm:"column:epoch_criacao;primaryKey;autoIncrement:false" json:"epoch_criacao"`

	// nil = boca toda
	NumeroDente *int   `gorm:"column:numero_dente" json:"numero_dente"`
	Face        string `gorm:"column:face;size:50" json:"face"`
	Anotacao    string `gorm:"column:anotacao;type:text;not null" json:"anotacao"`
	Data        string `gorm:"column:data;size:10;not null" json:"data"`
}

func (InformacaoTratamento) TableName() string { return "informacao_tratamentos" }
