package diag

// Code is a stable machine-readable identifier for a diagnostic.
type Code string

// Internal-contract violation codes raised by the lowering pass. Each one
// names an invariant the upstream passes were supposed to establish.
const (
	CodeBadModuleRoot    Code = "MXR-B001" // lowering root is not a Module
	CodeBadModuleItem    Code = "MXR-B002" // module body holds a non-declaration
	CodeUndefinedBinding Code = "MXR-B003" // name lookup missed every frame
	CodeNonFunctionValue Code = "MXR-B004" // callee bound to a non-function
	CodeBadIndexOperand  Code = "MXR-B005" // indexed operand is not array/pointer
	CodeBadDerefOperand  Code = "MXR-B006" // dereferenced operand is not a pointer
	CodeNonConstantInit  Code = "MXR-B007" // global/aggregate initializer not constant
	CodeUntypedExpr      Code = "MXR-B008" // expression reached lowering without a type
	CodeMalformedIR      Code = "MXR-B009" // produced IR failed verification
)
