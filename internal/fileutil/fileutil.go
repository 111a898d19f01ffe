// Package fileutil holds file permission modes for bundler output.
package fileutil

import "os"

// OwnerReadWrite is the file permission mode for spec output files
// containing potentially sensitive API data (owner read/write only).
const OwnerReadWrite os.FileMode = 0o600

// OutputDir is the permission mode for output directories created on demand.
const OutputDir os.FileMode = 0o755
