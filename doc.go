// Package loom implements an interpreter for a small template language used
// for deterministic random text generation.
//
// A program is a collection of named, indentation-structured lists whose
// items mix literal text with references to other lists, inline choice
// blocks, and method calls. Evaluation starts from a list named "output" and
// produces a single string; given the same source and the same seed, the
// output is bit-identical.
//
// The pipeline is linear with a feedback edge for imports:
//
//	source --> Parse --> AST --> Compile --> CompiledProgram --> Evaluate --> string
//	                                                 ^
//	                                          GeneratorLoader
//	                                   (re-enters Parse+Compile per import)
//
// Dependencies (other files)
// --------------------------
//   - span.go: source position tracking shared by every stage.
//   - parser.go, expr_parser.go: source text -> Program (AST).
//   - compiler.go: Program -> CompiledProgram (one addressable list tree,
//     weight, range and method-arity checks).
//   - value.go, scope.go, cursor.go: the runtime value model.
//   - eval.go, expression.go, selection.go, methods.go, grammar.go: the
//     evaluator.
//   - imports.go, rng.go: the two capabilities an evaluation is handed from
//     outside (a GeneratorLoader and a seeded RNG).
//   - errors.go: the four error kinds (ParseError, CompileError,
//     RuntimeError, ImportError) and caret-snippet formatting.
package loom
