// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package codec provides the module's standard CBOR encoding
// configuration.
//
// JSON is the human-facing format (CLI --json output, JSONC config
// files). CBOR is the compact binary format for handing parsed
// expressions to other programs (cronexpr parse --cbor). Both carry a
// cron.Expression as its canonical string, because Expression
// implements encoding.TextMarshaler and the encoder is configured to
// honor it.
//
// The encoder uses Core Deterministic Encoding (RFC 8949 §4.2): sorted
// map keys, smallest integer encoding, no indefinite-length items. The
// same expression always produces identical bytes.
//
//	data, err := codec.Marshal(value)
//	err = codec.Unmarshal(data, &value)
//
// Struct tags: types that are also printed as JSON use `json` tags,
// which fxamacker/cbor reads as a fallback when `cbor` tags are absent.
// Never put both tags on one field.
package codec
