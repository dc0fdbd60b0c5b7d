package envvar_test

import (
	"errors"
	"testing"

	envvar "github.com/sanLimbu/tasklist-api/internal/envvar"
)

type fakeProvider struct {
	secrets map[string]string
	err     error
}

func (p *fakeProvider) Get(key string) (string, error) {
	if p.err != nil {
		return "", p.err
	}

	return p.secrets[key], nil
}

func TestConfiguration_Get(t *testing.T) {
	t.Run("plain value", func(t *testing.T) {
		t.Setenv("DATABASE_HOST", "localhost")

		conf := envvar.New(&fakeProvider{})

		actual, err := conf.Get("DATABASE_HOST")
		if err != nil {
			t.Fatalf("unexpected error %s", err)
		}

		if actual != "localhost" {
			t.Fatalf("expected localhost, got %q", actual)
		}
	})

	t.Run("secure value resolved through provider", func(t *testing.T) {
		t.Setenv("DATABASE_PASSWORD", "plain")
		t.Setenv("DATABASE_PASSWORD_SECURE", "/secret/database")

		conf := envvar.New(&fakeProvider{
			secrets: map[string]string{"/secret/database": "sup3rs3cret"},
		})

		actual, err := conf.Get("DATABASE_PASSWORD")
		if err != nil {
			t.Fatalf("unexpected error %s", err)
		}

		if actual != "sup3rs3cret" {
			t.Fatalf("expected secret value, got %q", actual)
		}
	})

	t.Run("provider failure", func(t *testing.T) {
		t.Setenv("DATABASE_PASSWORD_SECURE", "/secret/database")

		conf := envvar.New(&fakeProvider{err: errors.New("vault sealed")})

		if _, err := conf.Get("DATABASE_PASSWORD"); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("unset value", func(t *testing.T) {
		conf := envvar.New(&fakeProvider{})

		actual, err := conf.Get("NOT_SET")
		if err != nil {
			t.Fatalf("unexpected error %s", err)
		}

		if actual != "" {
			t.Fatalf("expected empty value, got %q", actual)
		}
	})
}

func TestLoad(t *testing.T) {
	t.Parallel()

	t.Run("empty filename is a no-op", func(t *testing.T) {
		t.Parallel()

		if err := envvar.Load(""); err != nil {
			t.Fatalf("unexpected error %s", err)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()

		if err := envvar.Load("testdata/does-not-exist.env"); err == nil {
			t.Fatalf("expected error")
		}
	})
}
