package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/contafacil-dev/contafacil/internal/directory"
	"github.com/contafacil-dev/contafacil/internal/model"
)

// Config represents the top-level contafacil.yaml configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Fiscal   FiscalConfig   `yaml:"fiscal"`
	Entities []EntityConfig `yaml:"entities"`
	Parties  []PartyConfig  `yaml:"parties,omitempty"`
}

// ServerConfig controls the HTTP collaborator surface.
type ServerConfig struct {
	Listen  string `yaml:"listen"`
	LogMode string `yaml:"log_mode"` // "debug" or "production"
}

// FiscalConfig selects the default fiscal year for declarations.
type FiscalConfig struct {
	Year int `yaml:"year"`
}

// EntityConfig seeds one bookkeeping client.
type EntityConfig struct {
	ID        int    `yaml:"id"`
	NIF       string `yaml:"nif"`
	Name      string `yaml:"name"`
	Type      string `yaml:"type"`
	VATRegime string `yaml:"vat_regime"`
	Chart     string `yaml:"chart,omitempty"`
}

// PartyConfig seeds one third party.
type PartyConfig struct {
	ID   int    `yaml:"id"`
	NIF  string `yaml:"nif"`
	Name string `yaml:"name"`
	Kind string `yaml:"kind"`
	IBAN string `yaml:"iban,omitempty"`
}

// Load reads a contafacil.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Registry converts the seeded records into the directory the engine
// reads.
func (c *Config) Registry() *directory.Registry {
	entities := make([]model.Entity, 0, len(c.Entities))
	for _, e := range c.Entities {
		entities = append(entities, model.Entity{
			ID:        e.ID,
			TaxID:     e.NIF,
			LegalName: e.Name,
			Type:      model.EntityType(e.Type),
			VATRegime: model.VATRegime(e.VATRegime),
			Chart:     model.CatalogVariant(e.Chart),
		})
	}

	parties := make([]directory.Party, 0, len(c.Parties))
	for _, p := range c.Parties {
		parties = append(parties, directory.Party{
			ID:    p.ID,
			TaxID: p.NIF,
			Name:  p.Name,
			Kind:  directory.PartyKind(p.Kind),
			IBAN:  p.IBAN,
		})
	}

	return directory.New(entities, parties)
}

// Default returns a Config seeded with the demo directory.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Listen:  ":8080",
			LogMode: "production",
		},
		Fiscal: FiscalConfig{Year: 2026},
		Entities: []EntityConfig{
			{ID: 1, NIF: "B12345678", Name: "POINT TRADING S.L.", Type: "sociedad_limitada", VATRegime: "general"},
			{ID: 2, NIF: "12345678A", Name: "GARCÍA LÓPEZ, JUAN (Autónomo)", Type: "autonomo_directa", VATRegime: "general"},
			{ID: 3, NIF: "H03123456", Name: "COMUNIDAD PROP. EDIFICIO LOS NARANJOS", Type: "comunidad_propietarios", VATRegime: "no_sujeto"},
		},
		Parties: []PartyConfig{
			{ID: 1, NIF: "B98765432", Name: "SUMINISTROS INDUSTRIALES SL", Kind: "proveedor", IBAN: "ES7620770024003102575766"},
			{ID: 2, NIF: "A11111111", Name: "CLIENTE EJEMPLO SA", Kind: "cliente", IBAN: "ES9121000418450200051332"},
			{ID: 3, NIF: "11111111A", Name: "PROPIETARIO 1A - García Martínez", Kind: "propietario", IBAN: "ES7921000813610123456789"},
			{ID: 4, NIF: "22222222B", Name: "PROPIETARIO 1B - López Fernández", Kind: "propietario", IBAN: "ES4720385778983000760236"},
		},
	}
}
