// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package emv contains a dictionary of well-known EMV data object tags.
//
// The dictionary serves two purposes: it names tags for human-readable output
// and it identifies the constructed templates that EMV responses are usually
// decoded with. [Templates] returns these as an [emvtlv.ExpansionSet]:
//
//	records, err := emvtlv.Decode(response, emv.Templates())
//
// The dictionary is not exhaustive. Tags that are not part of it can still be
// decoded and expanded by adding them to an [emvtlv.ExpansionSet] explicitly.
package emv

import (
	"slices"

	"codello.dev/emvtlv"
)

// Tag describes a well-known EMV data object.
type Tag struct {
	ID       uint64 // the emvtlv.TagID of the tag
	Name     string
	Template bool // the value consists of nested data objects
}

// Well-known EMV template tags.
const (
	ApplicationTemplate     uint64 = 0x61
	FCITemplate             uint64 = 0x6F
	RecordTemplate          uint64 = 0x70
	IssuerScriptTemplate1   uint64 = 0x71
	IssuerScriptTemplate2   uint64 = 0x72
	DirectoryTemplate       uint64 = 0x73
	ResponseTemplateFormat2 uint64 = 0x77
	FCIProprietaryTemplate  uint64 = 0xA5
	FCIIssuerDiscretionary  uint64 = 0xBF0C
)

// dictionary is sorted by ID.
var dictionary = []Tag{
	{0x42, "Issuer Identification Number (IIN)", false},
	{0x4F, "Application Identifier (AID) - card", false},
	{0x50, "Application Label", false},
	{0x57, "Track 2 Equivalent Data", false},
	{0x5A, "Application Primary Account Number (PAN)", false},
	{ApplicationTemplate, "Application Template", true},
	{FCITemplate, "File Control Information (FCI) Template", true},
	{RecordTemplate, "READ RECORD Response Message Template", true},
	{IssuerScriptTemplate1, "Issuer Script Template 1", true},
	{IssuerScriptTemplate2, "Issuer Script Template 2", true},
	{DirectoryTemplate, "Directory Discretionary Template", true},
	{ResponseTemplateFormat2, "Response Message Template Format 2", true},
	{0x80, "Response Message Template Format 1", false},
	{0x82, "Application Interchange Profile", false},
	{0x84, "Dedicated File (DF) Name", false},
	{0x87, "Application Priority Indicator", false},
	{0x88, "Short File Identifier (SFI)", false},
	{0x8C, "Card Risk Management Data Object List 1 (CDOL1)", false},
	{0x8D, "Card Risk Management Data Object List 2 (CDOL2)", false},
	{0x8E, "Cardholder Verification Method (CVM) List", false},
	{0x8F, "Certification Authority Public Key Index", false},
	{0x90, "Issuer Public Key Certificate", false},
	{0x92, "Issuer Public Key Remainder", false},
	{0x94, "Application File Locator (AFL)", false},
	{0x95, "Terminal Verification Results", false},
	{0x9A, "Transaction Date", false},
	{0x9C, "Transaction Type", false},
	{FCIProprietaryTemplate, "File Control Information (FCI) Proprietary Template", true},
	{0x5F20, "Cardholder Name", false},
	{0x5F24, "Application Expiration Date", false},
	{0x5F25, "Application Effective Date", false},
	{0x5F28, "Issuer Country Code", false},
	{0x5F2A, "Transaction Currency Code", false},
	{0x5F2D, "Language Preference", false},
	{0x5F30, "Service Code", false},
	{0x5F34, "Application PAN Sequence Number", false},
	{0x9F02, "Amount, Authorised (Numeric)", false},
	{0x9F03, "Amount, Other (Numeric)", false},
	{0x9F06, "Application Identifier (AID) - terminal", false},
	{0x9F07, "Application Usage Control", false},
	{0x9F08, "Application Version Number - card", false},
	{0x9F0D, "Issuer Action Code - Default", false},
	{0x9F0E, "Issuer Action Code - Denial", false},
	{0x9F0F, "Issuer Action Code - Online", false},
	{0x9F10, "Issuer Application Data", false},
	{0x9F11, "Issuer Code Table Index", false},
	{0x9F12, "Application Preferred Name", false},
	{0x9F1A, "Terminal Country Code", false},
	{0x9F26, "Application Cryptogram", false},
	{0x9F27, "Cryptogram Information Data", false},
	{0x9F32, "Issuer Public Key Exponent", false},
	{0x9F33, "Terminal Capabilities", false},
	{0x9F34, "Cardholder Verification Method (CVM) Results", false},
	{0x9F36, "Application Transaction Counter (ATC)", false},
	{0x9F37, "Unpredictable Number", false},
	{0x9F38, "Processing Options Data Object List (PDOL)", false},
	{0x9F42, "Application Currency Code", false},
	{0x9F46, "ICC Public Key Certificate", false},
	{0x9F47, "ICC Public Key Exponent", false},
	{0x9F4A, "Static Data Authentication Tag List", false},
	{0x9F4D, "Log Entry", false},
	{0x9F6E, "Form Factor Indicator", false},
	{FCIIssuerDiscretionary, "File Control Information (FCI) Issuer Discretionary Data", true},
}

var index = func() map[uint64]int {
	m := make(map[uint64]int, len(dictionary))
	for i, t := range dictionary {
		m[t.ID] = i
	}
	return m
}()

// Lookup returns the dictionary entry for the tag identifier id.
func Lookup(id uint64) (Tag, bool) {
	i, ok := index[id]
	if !ok {
		return Tag{}, false
	}
	return dictionary[i], true
}

// Name returns the name of the tag identified by id, or the empty string if
// the tag is unknown.
func Name(id uint64) string {
	t, _ := Lookup(id)
	return t.Name
}

// Tags returns all dictionary entries ordered by tag identifier.
func Tags() []Tag {
	return slices.Clone(dictionary)
}

// Templates returns a new [emvtlv.ExpansionSet] containing every template tag
// of the dictionary.
func Templates() emvtlv.ExpansionSet {
	s := emvtlv.NewExpansionSet()
	for _, t := range dictionary {
		if t.Template {
			s[t.ID] = struct{}{}
		}
	}
	return s
}
