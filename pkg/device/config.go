package device

import (
	"errors"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds the operator-supplied additions to the built-in match tables
// and the subdomain labels of the mobile and tablet sites.
// It is read once at startup and never mutated afterwards.
type Config struct {
	NormalKeywords []string `env:"DEVICE_NORMAL_KEYWORDS" envSeparator:"," yaml:"normal_keywords"`
	MobileKeywords []string `env:"DEVICE_MOBILE_KEYWORDS" envSeparator:"," yaml:"mobile_keywords"`
	MobilePrefixes []string `env:"DEVICE_MOBILE_PREFIXES" envSeparator:"," yaml:"mobile_prefixes"`
	TabletKeywords []string `env:"DEVICE_TABLET_KEYWORDS" envSeparator:"," yaml:"tablet_keywords"`

	MobileCode string `env:"DEVICE_MOBILE_CODE" envDefault:"m" yaml:"mobile_code"`
	TabletCode string `env:"DEVICE_TABLET_CODE" envDefault:"t" yaml:"tablet_code"`

	// KeywordsFile optionally points to a YAML file merged by LoadKeywordsFile.
	KeywordsFile string `env:"DEVICE_KEYWORDS_FILE" yaml:"-"`
}

// DefaultConfig returns a config with no extra keywords and the default labels.
func DefaultConfig() Config {
	return Config{
		MobileCode: DefaultMobileCode,
		TabletCode: DefaultTabletCode,
	}
}

// LoadKeywordsFile reads a YAML document with the same keys as Config and
// appends its keyword lists to cfg. Non-empty codes in the file replace the
// ones in cfg.
//
//	normal_keywords: [ "my-desktop-kiosk" ]
//	mobile_prefixes: [ "acme" ]
//	mobile_code: mobile
func LoadKeywordsFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Join(ErrReadKeywordsFile, err)
	}

	var extra Config
	if err := yaml.Unmarshal(data, &extra); err != nil {
		return errors.Join(ErrInvalidKeywordsFile, err)
	}

	cfg.NormalKeywords = append(cfg.NormalKeywords, extra.NormalKeywords...)
	cfg.MobileKeywords = append(cfg.MobileKeywords, extra.MobileKeywords...)
	cfg.MobilePrefixes = append(cfg.MobilePrefixes, extra.MobilePrefixes...)
	cfg.TabletKeywords = append(cfg.TabletKeywords, extra.TabletKeywords...)
	if extra.MobileCode != "" {
		cfg.MobileCode = extra.MobileCode
	}
	if extra.TabletCode != "" {
		cfg.TabletCode = extra.TabletCode
	}
	return nil
}

// merge returns builtin followed by the normalized configured extras.
// Empty entries are dropped since they would match every agent.
func merge(builtin, extra []string) []string {
	out := make([]string, 0, len(builtin)+len(extra))
	out = append(out, builtin...)
	for _, s := range extra {
		s = strings.ToLower(strings.TrimSpace(s))
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}
