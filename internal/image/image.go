// Package image maps the IMAGE argument to a podman image reference and the
// extra arguments its image family needs.
package image

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ihn-hpc/ihn-hpc-sbatch/internal/config"
	"github.com/sirupsen/logrus"
)

// ErrMissingImage is returned when the "other" selector is used without --image.
var ErrMissingImage = errors.New(`--image must be specified if "other" container is chosen`)

// Kind distinguishes known shorthands from literal image references.
type Kind int

const (
	// QualifiedName is a literal reference passed straight to podman
	QualifiedName Kind = iota
	// Freesurfer is the "freesurfer" shorthand
	Freesurfer
)

// OtherSelector is the legacy selector that defers to an explicit --image.
const OtherSelector = "other"

// Selector is the parsed IMAGE argument.
type Selector struct {
	Kind Kind
	// Name holds the literal reference when Kind is QualifiedName
	Name string
}

// Parse matches s case-insensitively against the known shorthands.
// Anything unrecognized is kept byte-for-byte as a qualified name.
func Parse(s string) Selector {
	switch strings.ToLower(s) {
	case "freesurfer":
		return Selector{Kind: Freesurfer}
	default:
		return Selector{Kind: QualifiedName, Name: s}
	}
}

// ParseLegacy handles the "freesurfer | other" selector of the array
// submitter. "other" takes its reference from explicit, which must be set.
// Any other value behaves like Parse, and explicit is ignored.
func ParseLegacy(s, explicit string) (Selector, error) {
	if strings.ToLower(s) == OtherSelector {
		if explicit == "" {
			return Selector{}, ErrMissingImage
		}
		return Selector{Kind: QualifiedName, Name: explicit}, nil
	}
	return Parse(s), nil
}

func (s Selector) String() string {
	if s.Kind == Freesurfer {
		return "freesurfer"
	}
	return s.Name
}

// Resolved is a concrete image reference plus its family's podman arguments.
type Resolved struct {
	Reference string
	// Args are volume and environment options, each a complete option
	// such as "-v host:container" or "-e KEY=value"
	Args []string
}

// Resolver turns selectors into Resolved images using site config.
type Resolver struct {
	cfg config.FreesurferConfig
	log logrus.FieldLogger
}

// NewResolver creates a Resolver. Warnings go to log.
func NewResolver(cfg config.FreesurferConfig, log logrus.FieldLogger) *Resolver {
	return &Resolver{cfg: cfg, log: log}
}

// Resolve returns the image reference for sel. tag overrides the default tag
// of a shorthand; for qualified names it is ignored with a warning.
func (r *Resolver) Resolve(sel Selector, tag string) Resolved {
	switch sel.Kind {
	case Freesurfer:
		if tag == "" {
			tag = r.cfg.Tag
		}
		return Resolved{
			Reference: fmt.Sprintf("%s:%s", r.cfg.Repository, tag),
			Args: []string{
				fmt.Sprintf("-v %s:/usr/local/freesurfer/.license:ro", r.cfg.LicenseFile),
				fmt.Sprintf("-v %s:/usr/local/freesurfer/MCRv97", r.cfg.MatlabRuntime),
				"-e FS_LICENSE=/usr/local/freesurfer/.license",
			},
		}
	default:
		if tag != "" {
			r.log.Warnf("ignoring tag %q", tag)
		}
		return Resolved{Reference: sel.Name}
	}
}
