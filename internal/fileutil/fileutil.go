package fileutil

import "os"

// OwnerReadWrite is the file permission mode for generated documents.
// They can embed captured response data, so only the owner may read them.
const OwnerReadWrite os.FileMode = 0o600
