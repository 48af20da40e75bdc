package walker

import "os"

// processFile reports the file and hands it to the visit callback
func processFile(path, relativePath string, info os.FileInfo, options WalkOptions, visit VisitFunc) error {
	options.Logger.Debug("processFile: Visiting [%s] (%d bytes)", relativePath, info.Size())
	options.Reporter.Report(info.Name())

	if err := visit(path, info); err != nil {
		options.Logger.Debug("processFile Error [%s]: %v", relativePath, err)
		return err
	}
	return nil
}
