package converter

import (
	"fmt"
)

type makeNewGeneralErrorFuncType = func(message string, formatedValues ...interface{}) error
type makeNewIDErrorFuncType = func(
	id interface{}, message string, formatedValues ...interface{},
) error

// GeneralGeometryError ...
var GeneralGeometryError = makeNewGeneralErrorFunc("geometry")

// SolidIDError ...
var SolidIDError = makeNewIDErrorFunc("Solid", "geometry")

// EnclosureIDError ...
var EnclosureIDError = makeNewIDErrorFunc("Enclosure", "geometry")

// SurfaceIDError ...
var SurfaceIDError = makeNewIDErrorFunc("Surface", "surfaces")

func makeNewGeneralErrorFunc(stageName string) makeNewGeneralErrorFuncType {
	return func(message string, formatedValues ...interface{}) error {
		return fmt.Errorf("[converter] "+stageName+": "+message, formatedValues...)
	}
}

func makeNewIDErrorFunc(modelName, stageName string) makeNewIDErrorFuncType {
	return func(id interface{}, message string, formatedValues ...interface{}) error {
		header := fmt.Sprintf("[converter] %s{Id: %v} -> %s: ", modelName, id, stageName)
		return fmt.Errorf(header+message, formatedValues...)
	}
}

// Warning is a non-fatal, stage-local diagnostic accumulated alongside the
// primary result.
type Warning struct {
	SolidID int64  `json:"solidId"`
	Stage   string `json:"stage"`
	Message string `json:"message"`
}
