package filelist

import (
	"log/slog"

	"github.com/datatug/filelist/pkg/files"
	"github.com/datatug/filelist/pkg/files/osfile"
)

// DefaultRootPath is the browse root used when none is configured.
const DefaultRootPath = "/usr/bin/dat"

type options struct {
	root        string
	initialPath string
	filter      Filter
	store       files.Store
	logger      *slog.Logger
	pathChanged func(currentPath string)
}

func defaultOptions() options {
	return options{
		root:   DefaultRootPath,
		filter: DefaultFilter(),
	}
}

type Option func(o *options)

// WithRoot sets the directory the list starts at and can not ascend above.
func WithRoot(rootPath string) Option {
	return func(o *options) {
		o.root = rootPath
	}
}

// WithInitialPath starts the list at p instead of the root when p lies inside
// the root. It has no effect when cloning.
func WithInitialPath(p string) Option {
	return func(o *options) {
		o.initialPath = p
	}
}

func WithFilter(filter Filter) Option {
	return func(o *options) {
		o.filter = filter
	}
}

func WithStore(store files.Store) Option {
	return func(o *options) {
		o.store = store
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithPathChangedFunc registers f to be called after every navigation.
func WithPathChangedFunc(f func(currentPath string)) Option {
	return func(o *options) {
		o.pathChanged = f
	}
}

var newDefaultStore = func() files.Store {
	return osfile.NewStore()
}
