package models

// DataType is the semantic type inferred for a cell value.
type DataType string

const (
	TypeEmpty        DataType = "empty"
	TypeInteger      DataType = "integer"
	TypeDecimal      DataType = "decimal"
	TypeBoolean      DataType = "boolean"
	TypeDate         DataType = "date"
	TypeEmail        DataType = "email"
	TypeNumberAsText DataType = "numberAsText"
	TypeDateAsText   DataType = "dateAsText"
	TypeText         DataType = "text"
	TypeUnknown      DataType = "unknown"
)

// DataTypes lists every type in classification order.
var DataTypes = []DataType{
	TypeEmpty, TypeInteger, TypeDecimal, TypeBoolean, TypeDate,
	TypeEmail, TypeNumberAsText, TypeDateAsText, TypeText, TypeUnknown,
}

// Valid reports whether t is one of the known types.
func (t DataType) Valid() bool {
	for _, k := range DataTypes {
		if k == t {
			return true
		}
	}
	return false
}
