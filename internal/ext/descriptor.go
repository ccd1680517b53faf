package ext

import "encoding/json"

// Raw is the description copied out of a loaded library, before the version
// gate and validation. Module is the JSON document describing the module.
type Raw struct {
	Version string
	Name    string
	Module  string
}

// Descriptor is the trusted description of an extension. It is never
// modified after Describe returns it.
type Descriptor struct {
	// Version is the introspection contract version the extension declares.
	Version string
	// Name is the module name the extension registers with PHP.
	Name string
	// Module is the decoded module description.
	Module *Module
	// RawModule is the module description exactly as the extension reported it.
	RawModule json.RawMessage
}

// Module describes what an extension adds to PHP.
type Module struct {
	Name      string     `json:"name"`
	Functions []Function `json:"functions,omitempty"`
	Classes   []Class    `json:"classes,omitempty"`
	Constants []Constant `json:"constants,omitempty"`
}

// Function is a global PHP function.
type Function struct {
	Name   string   `json:"name"`
	Docs   []string `json:"docs,omitempty"`
	Params []Param  `json:"params,omitempty"`
	Ret    *Retval  `json:"ret,omitempty"`
}

// Param is a function or method parameter.
type Param struct {
	Name     string  `json:"name"`
	Type     string  `json:"ty,omitempty"`
	Nullable bool    `json:"nullable,omitempty"`
	Default  *string `json:"default,omitempty"`
	Variadic bool    `json:"variadic,omitempty"`
}

// Retval is a return type.
type Retval struct {
	Type     string `json:"ty"`
	Nullable bool   `json:"nullable,omitempty"`
}

// Visibility of a class member.
type Visibility string

const (
	Public    Visibility = "public"
	Protected Visibility = "protected"
	Private   Visibility = "private"
)

// Class is a PHP class, interface or enum exported by the extension.
type Class struct {
	Name       string     `json:"name"`
	Docs       []string   `json:"docs,omitempty"`
	Extends    string     `json:"extends,omitempty"`
	Implements []string   `json:"implements,omitempty"`
	Properties []Property `json:"properties,omitempty"`
	Methods    []Method   `json:"methods,omitempty"`
	Constants  []Constant `json:"constants,omitempty"`
}

// Method is a class method. Constructors have Kind "constructor".
type Method struct {
	Name       string     `json:"name"`
	Docs       []string   `json:"docs,omitempty"`
	Kind       string     `json:"kind,omitempty"`
	Params     []Param    `json:"params,omitempty"`
	Ret        *Retval    `json:"ret,omitempty"`
	Static     bool       `json:"static,omitempty"`
	Visibility Visibility `json:"visibility,omitempty"`
}

// Property is a class property.
type Property struct {
	Name       string     `json:"name"`
	Docs       []string   `json:"docs,omitempty"`
	Type       string     `json:"ty,omitempty"`
	Visibility Visibility `json:"vis,omitempty"`
	Static     bool       `json:"static,omitempty"`
	Nullable   bool       `json:"nullable,omitempty"`
	Default    *string    `json:"default,omitempty"`
}

// Constant is a global or class constant. Value is the PHP literal.
type Constant struct {
	Name  string   `json:"name"`
	Docs  []string `json:"docs,omitempty"`
	Value *string  `json:"value,omitempty"`
}
