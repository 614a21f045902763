package config

type Log struct {
	Level      int    `envconfig:"LEVEL" default:"0"`
	Format     string `envconfig:"FORMAT" default:"text" validate:"oneof=json text"`
	TimeFormat string `envconfig:"TIME_FORMAT" default:"2006-01-02 15:04:05"`
	Prefix     string `envconfig:"PREFIX" default:"[supportchain]"`
}

// Support holds the request keyword each escalation tier resolves.
type Support struct {
	BasicKeyword    string `envconfig:"BASIC_KEYWORD" default:"básico" validate:"required,nefield=AdvancedKeyword,nefield=ExpertKeyword"`
	AdvancedKeyword string `envconfig:"ADVANCED_KEYWORD" default:"avanzado" validate:"required,nefield=ExpertKeyword"`
	ExpertKeyword   string `envconfig:"EXPERT_KEYWORD" default:"experto" validate:"required"`
}

type App struct {
	Env     string   `envconfig:"APP_ENV" default:"development"`
	Log     *Log     `envconfig:"LOG" validate:"required"`
	Support *Support `envconfig:"SUPPORT" validate:"required"`
}
