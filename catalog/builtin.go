package catalog

// Builtin returns the catalog of the Phalcom standard types and objects.
// A new copy is returned on each call.
func Builtin() Catalog {
	return Catalog{
		Types: []TypeDescriptor{
			{
				Name:   "Type",
				Super:  "Object",
				Meta:   "Type",
				Global: true,
				Methods: []string{
					"getMethod(signature: String): Method",
					"getMethods(name: String): Array",
					"getMethods(): Array",
				},
			},
			{
				Name:   "Object",
				Meta:   "Type",
				Global: true,
				Methods: []string{
					"name: String",
					"name(value: String): Void",
					"type: Type",
					"type(value: Type): Void",
					"getField(): Object",
					"new(): Object",
					"construct(): Void",
					"null?: Boolean",
					"void?: Boolean",
					"callable?: Boolean",
					"toString: String",
					"toBoolean: Boolean",
					"is(other: Object): Boolean",
					"==(other: Object): Boolean",
					"!=(other: Object): Boolean",
				},
			},
			{
				Name:  "Null",
				Super: "Object",
				Meta:  "Type",
			},
			{
				Name:  "Void",
				Super: "Null",
				Meta:  "Type",
			},
			{
				Name:  "NumberMeta",
				Super: "Object",
				Meta:  "Type",
				Methods: []string{
					"fromString(value: String): Number",
				},
			},
			{
				Name:   "Number",
				Super:  "Object",
				Meta:   "NumberMeta",
				Global: true,
				Methods: []string{
					"+: Number",
					"-: Number",
					"not: Boolean",
					"+(other: Number): Number",
					"-(other: Number): Number",
					"*(other: Number): Number",
					"/(other: Number): Number",
					"%(other: Number): Number",
					"<(other: Number): Boolean",
					">(other: Number): Boolean",
					"<=(other: Number): Boolean",
					">=(other: Number): Boolean",
					"==(other: Number): Boolean",
					"!=(other: Number): Boolean",
					"floor: Number",
					"ceiling: Number",
					"rounded: Number",
					"truncated: Number",
					"fractional: Number",
					"sqrt: Number",
					"abs: Number",
					"max(other: Number): Number",
					"min(other: Number): Number",
					"exp: Number",
					"expt: Number",
					"expt(base: Number): Number",
					"power(exponent: Number): Number",
					"log: Number",
					"ln: Number",
					"log10: Number",
					"log(base: Number): Number",
					"sin: Number",
					"asin: Number",
					"sinh: Number",
					"cos: Number",
					"acos: Number",
					"cosh: Number",
					"tan: Number",
					"atan: Number",
					"tanh: Number",
				},
			},
			{
				Name:  "BooleanMeta",
				Super: "Object",
				Meta:  "Type",
				Methods: []string{
					"fromString(value: String): Boolean",
					"fromNumber(value: Number): Boolean",
					"fromList(value: List): Boolean",
				},
			},
			{
				Name:   "Boolean",
				Super:  "Object",
				Meta:   "BooleanMeta",
				Global: true,
			},
			{
				Name:  "StringMeta",
				Super: "Object",
				Meta:  "Type",
				Methods: []string{
					"fromNumber(value: Number): String",
				},
			},
			{
				Name:   "String",
				Super:  "Object",
				Meta:   "StringMeta",
				Global: true,
				Methods: []string{
					"+(other: String): String",
					"get(at: Number): String",
					"set(at: Number, with: Object): Void",
				},
			},
			{
				Name:  "ListMeta",
				Super: "Object",
				Meta:  "Type",
			},
			{
				Name:   "List",
				Super:  "Object",
				Meta:   "ListMeta",
				Global: true,
				Methods: []string{
					"size: Number",
					"put(element: Object): Void",
					"pop(element: Object): Object",
					"pop(at: Number): Object",
					"pop(): Object",
					"in(element: Object): Boolean",
					"get(at: Number): Object",
					"set(at: Number, with: Object): Void",
				},
			},
			{
				Name:  "MapMeta",
				Super: "Object",
				Meta:  "Type",
			},
			{
				Name:   "Map",
				Super:  "Object",
				Meta:   "MapMeta",
				Global: true,
				Methods: []string{
					"size: Number",
					"in(element: Object): Boolean",
					"get(at: Object): Object",
					"set(at: Object, with: Object): Void",
				},
			},
		},
		Objects: []ObjectDescriptor{
			{Name: "null", Type: "Null", Global: true},
			{Name: "void", Type: "Void", Global: true},
			{Name: "true", Type: "Boolean", Global: true},
			{Name: "false", Type: "Boolean", Global: true},
			{Name: "self", Type: "Object", Local: true},
			{Name: "super", Type: "Object", Local: true},
		},
	}
}
