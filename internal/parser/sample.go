package parser

// SampleProgram exercises parameter references, a result list, deeply nested
// blocks and several trailing blocks.
const SampleProgram = "laksjd (a: tru, b: a) -> (a, b) { kjsd {{{{}{pd{kdfj}kjd} }}}} {} {}"
