package exercise

import (
	"path/filepath"

	"calcpad/internal/config"
	"calcpad/internal/fn"
)

// LoadFunction resolves the conventional f/file parameters into a callable.
// `f` holds an inline expression in x; `file` names a Go source file under
// the project's functions directory. A nil Func with a nil error means
// neither parameter was provided.
func LoadFunction(cfg *config.Config, params Config) (fn.Func, string, error) {
	expr, err := params.String("f", "")
	if err != nil {
		return nil, "", err
	}
	fileSpec, err := params.String("file", "")
	if err != nil {
		return nil, "", err
	}
	switch {
	case expr != "":
		f, err := fn.Compile(expr)
		if err != nil {
			return nil, "", err
		}
		return f, expr, nil
	case fileSpec != "":
		path := fileSpec
		if !filepath.IsAbs(path) {
			path = filepath.Join(cfg.FunctionsDir(), path)
		}
		f, err := fn.LoadFile(path)
		if err != nil {
			return nil, "", err
		}
		return f, fileSpec, nil
	default:
		return nil, "", nil
	}
}
