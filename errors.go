package capfs

import (
	"errors"
	"io/fs"
	"strings"
	"syscall"

	"github.com/boostgo/errorx"
)

var (
	ErrOpenDirectory     = errorx.New("capfs.dir.open")
	ErrCloseDirectory    = errorx.New("capfs.dir.close")
	ErrStatDirectory     = errorx.New("capfs.dir.stat")
	ErrCreateDirectory   = errorx.New("capfs.dir.create")
	ErrCreateDirectories = errorx.New("capfs.dir.create.recursive")
)

// ErrorKind classifies why a directory could not be created.
// It is itself an error so callers can match with errors.Is.
type ErrorKind int

const (
	KindIO ErrorKind = iota
	KindPermissionDenied
	KindAlreadyExists
	KindNotDirectory
	KindBoundaryViolation
	KindNotFound
)

func (k ErrorKind) String() string {
	switch k {
	case KindPermissionDenied:
		return "permission denied"
	case KindAlreadyExists:
		return "already exists"
	case KindNotDirectory:
		return "already exists as non-directory"
	case KindBoundaryViolation:
		return "path escapes directory capability"
	case KindNotFound:
		return "parent not found"
	default:
		return "i/o error"
	}
}

func (k ErrorKind) Error() string {
	return "capfs: " + k.String()
}

// CreateError is returned by every directory creation on a Dir.
type CreateError struct {
	Kind ErrorKind
	Path string
	Err  error

	detail error
}

func (e *CreateError) Error() string {
	if e.Err == nil {
		return "create directory " + e.Path + ": " + e.Kind.String()
	}

	return "create directory " + e.Path + ": " + e.Kind.String() + ": " + e.Err.Error()
}

func (e *CreateError) Unwrap() []error {
	errs := make([]error, 0, 2)
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	if e.detail != nil {
		errs = append(errs, e.detail)
	}

	return errs
}

// Is matches the error kind, so errors.Is(err, KindAlreadyExists) works.
func (e *CreateError) Is(target error) bool {
	kind, ok := target.(ErrorKind)
	return ok && kind == e.Kind
}

type pathErrorContext struct {
	Path  string `json:"path"`
	Kind  string `json:"kind"`
	Error error  `json:"error"`
}

func newCreateError(code *errorx.Error, kind ErrorKind, path string, err error) error {
	detail := code.
		SetData(pathErrorContext{
			Path: path,
			Kind: kind.String(),
		})
	if err != nil {
		detail = code.
			SetError(err).
			SetData(pathErrorContext{
				Path:  path,
				Kind:  kind.String(),
				Error: err,
			})
	}

	return wrapCreateError(kind, path, err, detail)
}

func wrapCreateError(kind ErrorKind, path string, err, detail error) error {
	return &CreateError{
		Kind:   kind,
		Path:   path,
		Err:    err,
		detail: detail,
	}
}

func newOpenDirectoryError(path string, err error) error {
	return ErrOpenDirectory.
		SetError(err).
		SetData(pathErrorContext{
			Path:  path,
			Error: err,
		})
}

func newStatDirectoryError(path string, err error) error {
	return ErrStatDirectory.
		SetError(err).
		SetData(pathErrorContext{
			Path:  path,
			Error: err,
		})
}

// errPathEscapes matches the message os.Root uses for paths resolving
// outside of the root; the sentinel itself is unexported.
const errPathEscapes = "path escapes from parent"

// classify maps a failed single-directory creation to an ErrorKind.
func classify(err error) ErrorKind {
	switch {
	case err == nil:
		return KindIO
	case errors.Is(err, fs.ErrPermission):
		return KindPermissionDenied
	case errors.Is(err, fs.ErrExist):
		return KindAlreadyExists
	case errors.Is(err, fs.ErrNotExist):
		return KindNotFound
	case errors.Is(err, syscall.ENOTDIR):
		return KindNotDirectory
	case strings.Contains(err.Error(), errPathEscapes):
		return KindBoundaryViolation
	default:
		return KindIO
	}
}
