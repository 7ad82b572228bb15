package output

import "gopkg.in/yaml.v3"

// YAMLFormatter emits the rows as a currency table file that
// currency.ParseTable reads back without loss.
type YAMLFormatter struct{}

func (y YAMLFormatter) Name() string { return "yaml" }

func (y YAMLFormatter) Format(rows []Row) ([]byte, error) {
	return yaml.Marshal(struct {
		Currencies []Row `yaml:"currencies"`
	}{rows})
}
