// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// Package swimxml builds the XML fixture document consumed by the Swim
// `import_xml` function.
//
// A Builder owns a single document with a `data` root element. Every Add*
// call appends one element to the root, in call order, and the order of every
// nested list is preserved verbatim. Nothing is validated: names that refer
// to other records (parents, categories, indicators) are written as given,
// and duplicates are kept.
//
// Operations data values are drawn from the Builder's own random source, so
// two builders created with the same seed and fed the same records produce
// byte-identical output. Dynamic series read the Builder's clock once per
// series; inject a fixed clock with WithClock to make them reproducible too.
package swimxml
