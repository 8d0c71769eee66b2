package oas

// DocumentStats contains statistical information about a document
type DocumentStats struct {
	PathCount      int // Number of paths defined
	OperationCount int // Total number of operations across all paths
	SchemaCount    int // Number of component schemas
}

// GetDocumentStats returns statistics for a document
func GetDocumentStats(doc *Document) DocumentStats {
	stats := DocumentStats{}
	if doc == nil {
		return stats
	}

	stats.PathCount = len(doc.Paths)
	for _, pathItem := range doc.Paths {
		if pathItem == nil {
			continue
		}
		stats.OperationCount += countPathItemOperations(pathItem)
	}
	if doc.Components != nil {
		stats.SchemaCount = len(doc.Components.Schemas)
	}
	return stats
}

// countPathItemOperations counts operations in a single PathItem
func countPathItemOperations(pathItem *PathItem) int {
	count := 0
	for _, op := range GetOperations(pathItem) {
		if op != nil {
			count++
		}
	}
	return count
}
