// Package assets provides the stylesheets injected alongside typographic
// markup. The styles give the amp, caps, dquo, and quo hooks their look.
//
// # Loaders
//
//	StyleLoader (interface)
//	    │
//	    ├── EmbeddedLoader    - built-in styles compiled in with go:embed
//	    ├── FilesystemLoader  - styles from a directory on disk
//	    └── Resolver          - custom directory first, embedded as fallback
//
// A custom directory holds one file per style:
//
//	{basePath}/
//	└── styles/
//	    └── {name}.css
//
// Style names may not contain path separators or dots, and the filesystem
// loader refuses files that resolve outside its base directory.
package assets
