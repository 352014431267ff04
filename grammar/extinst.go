package grammar

// ExtInstEntry describes one instruction within an extended instruction set
// referenced by OpExtInst, analogous to Entry but keyed by instruction
// number within the set rather than by Opcode.
type ExtInstEntry struct {
	Number int
	Name   string
	Arity  int // number of plain id operands this instruction takes
}

// ExtInstSets maps a set name (as it appears in OpExtInstImport's literal
// string operand) to its instruction table. GLSL.std.450 is the one real
// extended set naga's own backend emits via OpExtInst, covering the subset
// of builtin math functions a shader body actually needs.
var ExtInstSets = map[string]map[int]ExtInstEntry{}

func registerExtInstSets() {
	glsl := map[int]ExtInstEntry{}
	add := func(number int, name string, arity int) {
		glsl[number] = ExtInstEntry{Number: number, Name: name, Arity: arity}
	}
	add(1, "Round", 1)
	add(4, "FAbs", 1)
	add(5, "SAbs", 1)
	add(6, "FSign", 1)
	add(8, "Floor", 1)
	add(9, "Ceil", 1)
	add(10, "Fract", 1)
	add(13, "Sin", 1)
	add(14, "Cos", 1)
	add(15, "Tan", 1)
	add(26, "Pow", 2)
	add(27, "Exp", 1)
	add(28, "Log", 1)
	add(29, "Exp2", 1)
	add(30, "Log2", 1)
	add(31, "Sqrt", 1)
	add(32, "InverseSqrt", 1)
	add(37, "FMin", 2)
	add(38, "UMin", 2)
	add(39, "SMin", 2)
	add(40, "FMax", 2)
	add(41, "UMax", 2)
	add(42, "SMax", 2)
	add(43, "FClamp", 3)
	add(46, "FMix", 3)
	add(66, "Length", 1)
	add(67, "Distance", 2)
	add(69, "Normalize", 1)
	add(71, "Reflect", 2)
	ExtInstSets["GLSL.std.450"] = glsl
}
