package envvar

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/sanLimbu/tasklist-api/internal"
)

//Provider provides access to secret values stored in external services
type Provider interface {
	Get(key string) (string, error)
}

//Configuration represents the values used for configuring the different services, secure
//values are resolved through the Provider.
type Configuration struct {
	provider Provider
}

//Load reads the env filename and loads it into ENV for the current process.
func Load(filename string) error {
	if filename == "" {
		return nil
	}

	if err := godotenv.Load(filename); err != nil {
		return internal.WrapErrorf(err, internal.ErrorCodeUnknown, "loading env var file")
	}

	return nil
}

//New ...
func New(provider Provider) *Configuration {
	return &Configuration{
		provider: provider,
	}
}

//Get returns the value for KEY, when KEY_SECURE is set the secret is resolved through the
//configured provider using that value as key.
func (c *Configuration) Get(key string) (string, error) {
	res := os.Getenv(key)

	valSecret := os.Getenv(fmt.Sprintf("%s_SECURE", key))
	if valSecret != "" {
		valSecretRes, err := c.provider.Get(valSecret)
		if err != nil {
			return "", internal.WrapErrorf(err, internal.ErrorCodeUnknown, "provider.Get")
		}

		res = valSecretRes
	}

	return res, nil
}
