// Package catalog renders validator messages in other languages.
//
// A Catalog holds message templates per language, keyed by validator error
// code (for example "notOneOf") or by the field-error translation key
// ("validation.notOneOf"). Templates use the same "%{name}" placeholders as
// the built-in messages and receive the message params:
//
//	de:
//	  notOneOf: "Muss einer von %{haystack} sein, ist aber %{value}."
//
// Templates are loaded through a Source: MapSource for in-memory data,
// FileSource for a single YAML or JSON file and FSSource for a directory in
// any fs.FS, including embed.FS.
//
//	c, err := catalog.New(ctx, &catalog.FileSource{Path: "messages.yaml"},
//		catalog.WithDefaultLanguage("en"),
//	)
//	if err != nil {
//		return err
//	}
//	msgs := c.Localize("de-AT", res.Messages)
//
// Language lookup goes through golang.org/x/text/language, so regional tags
// and Accept-Language values resolve to the closest catalog language. Codes
// without a template in the resolved or default language keep their
// original text.
package catalog
