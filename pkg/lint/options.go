package lint

import (
	"fmt"

	"github.com/go-viper/mapstructure/v2"
)

// DecodeOptions decodes a rule option map into a struct tagged with
// `mapstructure:"..."`. Input is weakly typed, so "15", 15 and 15.0 all
// decode into an int field.
func DecodeOptions(opts map[string]any, out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           out,
	})
	if err != nil {
		return fmt.Errorf("rule options: %w", err)
	}
	if err := dec.Decode(opts); err != nil {
		return fmt.Errorf("rule options: %w", err)
	}
	return nil
}
