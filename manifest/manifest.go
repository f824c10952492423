package manifest

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/wippyai/fastcall/abi"
	"github.com/wippyai/fastcall/errors"
	"github.com/wippyai/fastcall/registry"
)

// Declaration is one fast-call signature declared in a manifest.
type Declaration struct {
	Namespace string
	Name      string
	Args      []abi.Type
	Return    abi.Scalar
}

// Key returns the namespace#name form callbacks are bound by.
func (d Declaration) Key() string { return d.Namespace + "#" + d.Name }

// Manifest is an ordered set of declarations.
type Manifest struct {
	Functions []Declaration
}

type rawManifest struct {
	Functions []rawFunction `toml:"function"`
}

type rawFunction struct {
	Namespace string   `toml:"namespace"`
	Name      string   `toml:"name"`
	Args      []string `toml:"args"`
	Return    string   `toml:"return"`
}

// Parse decodes and validates a TOML manifest. An omitted return declares
// void.
func Parse(data []byte) (*Manifest, error) {
	var raw rawManifest
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, errors.Wrap(errors.PhaseManifest, errors.KindInvalidData, err, "decode manifest")
	}

	m := &Manifest{Functions: make([]Declaration, 0, len(raw.Functions))}
	for _, rf := range raw.Functions {
		if rf.Namespace == "" {
			return nil, errors.InvalidInput(errors.PhaseManifest, "function namespace cannot be empty")
		}
		if rf.Name == "" {
			return nil, errors.InvalidInput(errors.PhaseManifest, "function name cannot be empty")
		}

		decl := Declaration{Namespace: rf.Namespace, Name: rf.Name}
		for i, name := range rf.Args {
			t, ok := abi.ParseType(name)
			if !ok {
				return nil, errors.InvalidEnum(errors.PhaseManifest,
					[]string{rf.Namespace, rf.Name, fmt.Sprintf("args[%d]", i)}, name, "type")
			}
			decl.Args = append(decl.Args, t)
		}

		decl.Return = abi.ScalarVoid
		if rf.Return != "" {
			s, ok := abi.ParseScalar(rf.Return)
			if !ok || s == abi.ScalarCallbackOptions {
				return nil, errors.InvalidEnum(errors.PhaseManifest,
					[]string{rf.Namespace, rf.Name, "return"}, rf.Return, "scalar")
			}
			decl.Return = s
		}

		m.Functions = append(m.Functions, decl)
	}
	return m, nil
}

// Load reads and parses a manifest file.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.PhaseManifest, errors.KindInvalidData, err, "read manifest")
	}
	return Parse(data)
}

// Declared adapts one declaration plus its Go callback into the registrant
// contract.
type Declared struct {
	decl     Declaration
	callback any
}

// NewDeclared pairs a declaration with its callback.
func NewDeclared(decl Declaration, callback any) *Declared {
	return &Declared{decl: decl, callback: callback}
}

func (d *Declared) Args() []abi.Type       { return d.decl.Args }
func (d *Declared) ReturnType() abi.Scalar { return d.decl.Return }
func (d *Declared) Callback() any          { return d.callback }

// Bind registers every declared function with its callback, keyed by
// "namespace#name". A declaration without a callback and a callback without
// a declaration are both errors: the manifest is the authoritative surface.
func (m *Manifest) Bind(reg *registry.Registry, callbacks map[string]any) error {
	bound := make(map[string]bool, len(m.Functions))
	for _, decl := range m.Functions {
		cb, ok := callbacks[decl.Key()]
		if !ok {
			return errors.NotFound(errors.PhaseManifest, "callback", decl.Key())
		}
		if err := reg.Register(decl.Namespace, decl.Name, NewDeclared(decl, cb)); err != nil {
			return err
		}
		bound[decl.Key()] = true
	}
	for key := range callbacks {
		if !bound[key] {
			return errors.NotFound(errors.PhaseManifest, "declaration", key)
		}
	}
	return nil
}
