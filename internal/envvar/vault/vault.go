package vault

import (
	vault "github.com/hashicorp/vault/api"

	"github.com/sanLimbu/tasklist-api/internal"
)

//Provider ...
type Provider struct {
	client *vault.Client
	path   string
}

//New instantiates a vault client using the supplied token, address and secret path.
func New(token, addr, path string) (*Provider, error) {
	config := vault.DefaultConfig()
	config.Address = addr

	client, err := vault.NewClient(config)
	if err != nil {
		return nil, internal.WrapErrorf(err, internal.ErrorCodeUnknown, "vault.NewClient")
	}

	client.SetToken(token)

	return &Provider{
		client: client,
		path:   path,
	}, nil
}

//Get reads the secret stored under key.
func (p *Provider) Get(key string) (string, error) {
	secret, err := p.client.Logical().Read(p.path)
	if err != nil {
		return "", internal.WrapErrorf(err, internal.ErrorCodeUnknown, "client.Logical().Read")
	}

	if secret == nil {
		return "", internal.NewErrorf(internal.ErrorCodeNotFound, "no secrets in path %s", p.path)
	}

	data, ok := secret.Data["data"].(map[string]interface{})
	if !ok {
		return "", internal.NewErrorf(internal.ErrorCodeUnknown, "missing data field")
	}

	res, ok := data[key].(string)
	if !ok {
		return "", internal.NewErrorf(internal.ErrorCodeNotFound, "key %q not found", key)
	}

	return res, nil
}
