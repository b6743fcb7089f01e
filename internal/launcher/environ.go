package launcher

import "os"

// Environ isolates the process-global state the launcher touches (working
// directory, environment, own executable path) so tests can assert on what
// would be set without mutating real process state.
type Environ interface {
	LookupEnv(key string) (string, bool)
	Setenv(key, value string) error
	Chdir(dir string) error
	ExecutablePath() (string, error)
}

// OSEnviron is the production Environ backed by the os package.
type OSEnviron struct{}

func (OSEnviron) LookupEnv(key string) (string, bool) {
	return os.LookupEnv(key)
}

func (OSEnviron) Setenv(key, value string) error {
	return os.Setenv(key, value)
}

func (OSEnviron) Chdir(dir string) error {
	return os.Chdir(dir)
}

func (OSEnviron) ExecutablePath() (string, error) {
	return os.Executable()
}
