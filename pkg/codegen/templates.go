package codegen

import (
	"fmt"
	"strings"
	"text/template"
)

// funcMap provides helper functions available to all emission templates.
var funcMap = template.FuncMap{
	"hex":     func(v uint16) string { return fmt.Sprintf("%04X", v) },
	"attrs":   attrExpr,
	"descRef": descRef,
}

// attrExpr renders composed attribute flags as a C bitwise-or expression.
func attrExpr(flags []string) string {
	if len(flags) == 0 {
		return "0"
	}
	return strings.Join(flags, " | ")
}

// descRef renders the descriptor reference stored in a dictionary list row.
func descRef(d *Descriptor) string {
	if d.Extended {
		return fmt.Sprintf("&OD_ext_%04X", d.Index)
	}
	if d.Record != nil {
		// Record descriptors are arrays; the name already decays.
		return fmt.Sprintf("OD_obj_%04X", d.Index)
	}
	return fmt.Sprintf("&OD_obj_%04X", d.Index)
}

// templates holds all parsed C emission templates.
var templates = template.Must(template.New("").Funcs(funcMap).Parse(
	headerTmpl +
		fieldTmpl +
		sourceTmpl +
		descriptorTmpl,
))

// renderTemplate executes a named template into the builder.
func renderTemplate(b *strings.Builder, name string, data any) {
	if err := templates.ExecuteTemplate(b, name, data); err != nil {
		panic(fmt.Sprintf("template %s: %v", name, err))
	}
}

const headerTmpl = `{{define "header"}}/* Object dictionary storage and descriptors for {{.Name}}.
 * Generated by odgen; do not edit. */
#ifndef OD_H
#define OD_H

/* Object category totals */
{{range .Counters}}#define OD_CNT_{{.Name}} {{.Total}}
{{end}}
{{- range .Groups}}{{if .Fields}}
typedef struct {
{{- range .Fields}}
{{template "field" .}}
{{- end}}
} OD_{{.Name}}_t;

extern OD_{{.Name}}_t OD_{{.Name}};
{{end}}{{end}}
#define OD_CNT_ENTRIES {{.Entries}}

extern OD_entry_t ODList[OD_CNT_ENTRIES + 1];

/* Shortcut accessors for dictionary entries */
{{range .Short}}#define {{.Name}} (&ODList[{{.Position}}])
{{end}}
{{- range .Long}}#define {{.Name}} (&ODList[{{.Position}}])
{{end}}
#endif /* OD_H */
{{end}}`

const fieldTmpl = `{{define "field"}}{{if .Sub}}    struct {
{{- range .Sub}}
        {{.Type}} {{.Name}}{{.Suffix}};
{{- end}}
    } {{.Name}};{{else}}    {{.Type}} {{.Name}}{{.Suffix}};{{end}}{{end}}`

const sourceTmpl = `{{define "source"}}/* Object dictionary storage and descriptors for {{.Name}}.
 * Generated by odgen; do not edit. */
#include "OD.h"

{{range .Groups}}{{if .Fields}}OD_{{.Name}}_t OD_{{.Name}} = {
{{- range .Inits}}
    {{.}},
{{- end}}
};

{{end}}{{end}}
{{- range .List}}{{template "descriptor" .Descriptor}}
{{end}}OD_entry_t ODList[OD_CNT_ENTRIES + 1] = {
{{- range .List}}
    {0x{{hex .Index}}, 0x{{printf "%02X" .SubCount}}, {{.ShapeTag}}, {{descRef .Descriptor}}},
{{- end}}
    {0x0000, 0x00, 0, NULL},
};
{{end}}`

const descriptorTmpl = `{{define "descriptor"}}{{if .Var}}static OD_obj_var_t OD_obj_{{hex .Index}} = {
    .dataOrig = {{.Var.Data}},
    .attribute = {{attrs .Var.Attrs}},
    .dataLength = {{.Var.Len}},
};
{{else if .Array}}static OD_obj_array_t OD_obj_{{hex .Index}} = {
    .dataOrig0 = {{.Array.Data0}},
    .dataOrig = {{.Array.Data}},
    .attribute0 = {{attrs .Array.Attrs0}},
    .attribute = {{attrs .Array.Attrs}},
    .dataElementLength = {{.Array.ElemLen}},
};
{{else}}static OD_obj_record_t OD_obj_{{hex .Index}}[] = {
{{- range .Record}}
    {.dataOrig = {{.Data}}, .subIndex = {{.SubIndex}}, .attribute = {{attrs .Attrs}}, .dataLength = {{.Len}}},
{{- end}}
};
{{end}}{{if .Extended}}static OD_extension_t OD_ext_{{hex .Index}} = {
    .object = {{if .Record}}OD_obj_{{hex .Index}}{{else}}&OD_obj_{{hex .Index}}{{end}},
    .read = NULL,
    .write = NULL,
};
{{end}}{{end}}`
