// Package pathutil validates output file paths before generated documents
// are written.
//
// [SanitizeOutputPath] cleans a path, resolves it to an absolute path and
// rejects symlinks. [RejectInputOverwrite] refuses an output path that
// names one of the input files:
//
//	safe, err := pathutil.SanitizeOutputPath(userProvidedPath)
//	if err != nil {
//	    return err // symlink detected
//	}
//	if err := pathutil.RejectInputOverwrite(safe, collectionPath, environmentPath); err != nil {
//	    return err
//	}
package pathutil
