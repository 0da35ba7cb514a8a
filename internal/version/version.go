package version

// Version is the version of the uaccount module, overridden at build time
// with -ldflags "-X github.com/ucloud-forge/uaccount/internal/version.Version=...".
var Version = "0.1.0"
