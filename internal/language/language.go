// Package language normalizes user-supplied language codes into the
// ISO 639-2 form ffmpeg expects in stream metadata.
package language

import (
	"fmt"
	"strings"
	"sync"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// byName maps lower-cased English language names ("english", "french") to
// their base language.
var byName = sync.OnceValue(func() map[string]language.Base {
	namer := display.English.Languages()
	names := make(map[string]language.Base)
	for _, tag := range display.Supported.Tags() {
		base, _ := tag.Base()
		if name := namer.Name(base); name != "" {
			names[strings.ToLower(name)] = base
		}
	}
	return names
})

// ToISO3 converts an ISO 639-1, ISO 639-2 or BCP 47 code ("en", "eng",
// "en-US") or an English language name ("English") to a three-letter
// ISO 639-2 code.
func ToISO3(code string) (string, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return "", fmt.Errorf("empty language code")
	}

	if base, ok := byName()[strings.ToLower(code)]; ok {
		return base.ISO3(), nil
	}

	base, err := language.ParseBase(strings.ToLower(code))
	if err != nil {
		tag, tagErr := language.Parse(code)
		if tagErr != nil {
			return "", fmt.Errorf("parse language %q: %w", code, err)
		}
		base, _ = tag.Base()
	}

	if base.String() == "und" {
		return "", fmt.Errorf("undetermined language %q", code)
	}
	return base.ISO3(), nil
}

// DisplayName returns the English name of an ISO code for log output.
func DisplayName(code string) string {
	base, err := language.ParseBase(strings.ToLower(strings.TrimSpace(code)))
	if err != nil {
		return code
	}
	name := display.English.Languages().Name(base)
	if name == "" {
		return code
	}
	return name
}
