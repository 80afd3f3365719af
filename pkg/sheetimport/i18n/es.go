package i18n

var spanish = map[string]string{
	MsgMissingHeader:           "Falta la cabecera obligatoria %q",
	SugMissingHeader:           "Añada una columna llamada %q en la primera fila",
	MsgEmptyColumn:             "La columna %q no tiene valores",
	SugEmptyColumn:             "Rellene al menos un valor en la columna %q",
	MsgTooManyRows:             "La hoja tiene %d filas de datos, más que el límite de %d",
	SugTooManyRows:             "Divida los datos en archivos de como máximo %d filas",
	MsgFileTooLarge:            "El tamaño del archivo, %d bytes, supera el límite de %d bytes",
	SugFileTooLarge:            "Reduzca el tamaño del archivo o divídalo en varios",
	MsgNoData:                  "El archivo no contiene filas de datos",
	SugNoData:                  "Añada al menos una fila debajo de la fila de cabecera",
	MsgNoAllowedSheet:          "No se encontró ninguna de las hojas esperadas: %s",
	SugNoAllowedSheet:          "Renombre la hoja a una de: %s",
	MsgInvalidType:             "El valor %q de la columna %q es %s, se esperaba %s",
	MsgLongText:                "El texto de la columna %q tiene %d caracteres, más de %d",
	MsgSpecialCharacters:       "La columna %q contiene caracteres de control",
	SugSpecialCharacters:       "Elimine los caracteres no imprimibles de la celda",
	MsgDuplicateValue:          "El valor %q de la columna %q ya aparece en la fila %d",
	MsgDuplicateRow:            "La fila repite una fila anterior",
	SugDuplicateRow:            "Elimine la fila repetida si se introdujo dos veces",
	ReportTitle:                "Informe de importación",
	ReportFile:                 "Archivo: %s",
	ReportSize:                 "Tamaño: %s",
	ReportSheets:               "Hojas: %d",
	ReportRows:                 "Filas totales: %d",
	ReportFillRate:             "Tasa de relleno: %.1f%%",
	ReportSheetLine:            "- %s: %d filas, %d columnas",
	ReportErrors:               "Errores (%d)",
	ReportWarnings:             "Advertencias (%d)",
	ReportSuggestion:           "Sugerencia: %s",
	ReportNoIssues:             "No se encontraron problemas",
	ReportLocationSheet:        "hoja %q",
	ReportLocationRow:          "fila %d",
	ReportLocationColumn:       "columna %q",
	ReportHiddenSheet:          "(oculta)",
	ReportTruncatedSheet:       "(solo vista previa)",
	ReportTypeDistributionHead: "Tipos:",
}
