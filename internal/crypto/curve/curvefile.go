package curve

import (
	"math/big"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// curveFile is the YAML shape of a curve descriptor. All integers are
// base-10 strings (bare YAML integers also decode). a and b are
// optional and default to the secp256k1 family values 0 and 7.
type curveFile struct {
	Name string `yaml:"name"`
	P    string `yaml:"p"`
	N    string `yaml:"n"`
	A    string `yaml:"a"`
	B    string `yaml:"b"`
	Gx   string `yaml:"gx"`
	Gy   string `yaml:"gy"`
}

// ParseParams decodes a YAML curve descriptor.
func ParseParams(data []byte) (*Params, error) {
	var cf curveFile
	if err := yaml.Unmarshal(data, &cf); err != nil {
		return nil, errors.Wrap(err, "decoding curve file")
	}

	p, err := parseInt("p", cf.P)
	if err != nil {
		return nil, err
	}
	n, err := parseInt("n", cf.N)
	if err != nil {
		return nil, err
	}
	gx, err := parseInt("gx", cf.Gx)
	if err != nil {
		return nil, err
	}
	gy, err := parseInt("gy", cf.Gy)
	if err != nil {
		return nil, err
	}

	a := big.NewInt(0)
	if cf.A != "" {
		if a, err = parseInt("a", cf.A); err != nil {
			return nil, err
		}
	}
	b := big.NewInt(7)
	if cf.B != "" {
		if b, err = parseInt("b", cf.B); err != nil {
			return nil, err
		}
	}

	return NewParams(cf.Name, p, n, a, b, gx, gy), nil
}

// LoadParams reads a YAML curve descriptor from disk.
func LoadParams(path string) (*Params, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading curve file %s", path)
	}
	return ParseParams(data)
}

func parseInt(name, s string) (*big.Int, error) {
	if s == "" {
		return nil, errors.Errorf("curve file is missing %q", name)
	}
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, errors.Errorf("curve file field %q: %q is not a base-10 integer", name, s)
	}
	return v, nil
}
