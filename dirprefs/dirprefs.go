// Package dirprefs provides directory/project specific preference settings
package dirprefs

import (
	"os"
	"path/filepath"

	yaml "gopkg.in/yaml.v2"
)

const prefsFilename = ".stackship.yml"

// DirPreferences holds deploy arguments set in a project's .stackship.yml
// file. The flag tags match the corresponding command line argument names.
type DirPreferences struct {
	StackName    string `yaml:"stack-name,omitempty" flag:"stack-name"`
	TemplateFile string `yaml:"template-file,omitempty" flag:"template-file"`
	ParamsFile   string `yaml:"params-file,omitempty" flag:"params-file"`
	Region       string `yaml:"region,omitempty" flag:"region"`

	Path string `yaml:"-" flag:"-"`
}

// Load loads DirPreferences. It starts in the current working directory,
// looking for a readable '.stackship.yml' file, and walks up the directory
// hierarchy until it finds one, or reaches the root of the fs.
//
// It returns an empty DirPreferences if no '.stackship.yml' file is found.
// It returns an error if a malformed file is found, or if any errors occur
// during file system access.
func Load(recurse bool) (*DirPreferences, error) {
	path, err := os.Getwd()
	if err != nil {
		return nil, err
	}

	return loadFrom(path, recurse)
}

func loadFrom(path string, recurse bool) (*DirPreferences, error) {
	prefs := &DirPreferences{}

	var f *os.File
	var err error
	for {
		f, err = os.Open(filepath.Join(path, prefsFilename))
		if err != nil {
			if isSystemRoot(path) || !recurse {
				return prefs, nil
			}

			path = filepath.Dir(path)
			continue
		}

		break
	}

	defer f.Close()

	dec := yaml.NewDecoder(f)
	err = dec.Decode(prefs)
	if err != nil {
		return nil, err
	}

	prefs.Path = f.Name()
	return prefs, nil
}

// isSystemRoot validates if the given path is the root of the file system.
func isSystemRoot(path string) bool {
	return filepath.Dir(path) == path
}
