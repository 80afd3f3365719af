package sheetimport

import "github.com/ukaji3/sheetimport-go/pkg/sheetimport/models"

// QuestionImport is the configuration for quiz question uploads.
func QuestionImport() models.ImportConfiguration {
	return models.ImportConfiguration{
		ExpectedHeaders:  []string{"Statement", "Type", "Options"},
		RequiredColumns:  []string{"Statement", "Type"},
		MaxRows:          models.IntPtr(1000),
		MaxFileSizeBytes: models.Int64Ptr(5_000_000),
		TrimWhitespace:   true,
	}
}

// StudentRosterImport is the configuration for class roster uploads.
func StudentRosterImport() models.ImportConfiguration {
	return models.ImportConfiguration{
		ExpectedHeaders:  []string{"Name", "Email"},
		RequiredColumns:  []string{"Name", "Email"},
		MaxRows:          models.IntPtr(500),
		MaxFileSizeBytes: models.Int64Ptr(2_000_000),
		ColumnTypes:      map[string]models.DataType{"Email": models.TypeEmail},
		UniqueColumns:    []string{"Email"},
		TrimWhitespace:   true,
	}
}

// UserImport is the configuration for account uploads.
func UserImport() models.ImportConfiguration {
	return models.ImportConfiguration{
		ExpectedHeaders:       []string{"Name", "Email", "Role"},
		RequiredColumns:       []string{"Email", "Role"},
		MaxRows:               models.IntPtr(5000),
		MaxFileSizeBytes:      models.Int64Ptr(10_000_000),
		ColumnTypes:           map[string]models.DataType{"Email": models.TypeEmail},
		UniqueColumns:         []string{"Email"},
		DetectDuplicateRows:   true,
		WarnSpecialCharacters: true,
		TrimWhitespace:        true,
		CollapseSpaces:        true,
	}
}

// Preset returns the configuration registered under name.
func Preset(name string) (models.ImportConfiguration, bool) {
	switch name {
	case "questions":
		return QuestionImport(), true
	case "roster":
		return StudentRosterImport(), true
	case "users":
		return UserImport(), true
	}
	return models.ImportConfiguration{}, false
}
