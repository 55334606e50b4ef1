package middleware

import (
	"reflect"
	"strings"

	"github.com/urfave/cli"
	"gopkg.in/oleiade/reflections.v1"

	"github.com/stackship/stackship-cli/config"
	"github.com/stackship/stackship-cli/dirprefs"
	"github.com/stackship/stackship-cli/errs"
)

// Chain allows easy sequential calling of BeforeFuncs and AfterFuncs.
// chain will exit on the first error seen.
func Chain(funcs ...func(*cli.Context) error) func(*cli.Context) error {
	return func(ctx *cli.Context) error {

		for _, f := range funcs {
			err := f(ctx)
			if err != nil {
				return err
			}
		}

		return nil
	}
}

// LoadDirPrefs loads argument values from the .stackship.yml file
func LoadDirPrefs(ctx *cli.Context) error {
	d, err := dirprefs.Load(true)
	if err != nil {
		return err
	}

	return reflectArgs(ctx, d, "flag")
}

// LoadRcPrefs fills the region and profile arguments from ~/.stackshiprc
// when neither a flag nor an environment variable set them.
func LoadRcPrefs(ctx *cli.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return errs.NewErrorExitError("Could not load config", err)
	}

	if !isSet(ctx, "region") && cfg.Region != "" {
		if err := ctx.Set("region", cfg.Region); err != nil {
			return err
		}
	}

	if !isSet(ctx, "profile") && cfg.Profile != "" {
		if err := ctx.Set("profile", cfg.Profile); err != nil {
			return err
		}
	}

	return nil
}

func reflectArgs(ctx *cli.Context, i interface{}, tagName string) error {
	// tagged field names match the argument names
	tags, err := reflections.Tags(i, tagName)
	if err != nil {
		return err
	}

	flags := make(map[string]bool)
	for _, flagName := range ctx.FlagNames() {
		// This value is already set via arguments or env vars. skip it.
		if isSet(ctx, flagName) {
			continue
		}

		flags[flagName] = true
	}

	for fieldName, tag := range tags {
		name := strings.SplitN(tag, ",", 2)[0] // remove omitempty if its there
		if _, ok := flags[name]; ok {
			field, err := reflections.GetField(i, fieldName)
			if err != nil {
				return err
			}

			if f, ok := field.(string); ok && f != "" {
				ctx.Set(name, f)
			}
		}
	}

	return nil
}

func isSet(ctx *cli.Context, name string) bool {
	value := ctx.Generic(name)
	if value != nil {
		v := reflect.Indirect(reflect.ValueOf(value))
		switch v.Kind() {
		case reflect.Array, reflect.Slice, reflect.String:
			return v.Len() != 0
		}

		return true
	}

	return false
}
