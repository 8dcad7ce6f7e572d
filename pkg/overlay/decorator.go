package overlay

import (
	pkgmodel "github.com/forgekit/go-soldoc/pkg/model"
)

// Decorator fills documentation gaps in a file doc from overlay files.
type Decorator struct {
	store *Store
}

// NewDecorator builds a Decorator backed by the provided store. When store is
// nil or empty, the decorator becomes a no-op.
func NewDecorator(store *Store) *Decorator {
	return &Decorator{store: store}
}

// Decorate fills empty natspec fields on contracts and member groups that
// have a matching overlay. Extracted documentation is never overwritten, and
// contracts without overlays are left untouched.
func (d *Decorator) Decorate(doc *pkgmodel.FileDoc) error {
	if d == nil || d.store.Empty() || doc == nil {
		return nil
	}

	for c := range doc.Contracts {
		contract := &doc.Contracts[c]
		cfg, ok := d.store.Contract(contract.Name)
		if !ok {
			continue
		}

		fillString(&contract.Title, cfg.Title)
		fillString(&contract.Author, cfg.Author)
		fillString(&contract.Details, cfg.Details)
		fillString(&contract.Notice, cfg.Notice)

		for g := range contract.Methods {
			group := &contract.Methods[g]
			member, ok := cfg.Methods[group.Name]
			if !ok {
				continue
			}
			for m := range group.Methods {
				applyMember(member, &group.Methods[m].Details, &group.Methods[m].Notice, group.Methods[m].Params)
				applyParams(member.Params, group.Methods[m].Returns)
			}
		}
		for g := range contract.Events {
			group := &contract.Events[g]
			member, ok := cfg.Events[group.Name]
			if !ok {
				continue
			}
			for e := range group.Events {
				applyMember(member, &group.Events[e].Details, &group.Events[e].Notice, group.Events[e].Params)
			}
		}
		for g := range contract.Errors {
			group := &contract.Errors[g]
			member, ok := cfg.Errors[group.Name]
			if !ok {
				continue
			}
			for e := range group.Errors {
				applyMember(member, &group.Errors[e].Details, &group.Errors[e].Notice, group.Errors[e].Params)
			}
		}
	}

	return nil
}

func applyMember(member Member, details, notice *string, params []pkgmodel.ParamDoc) {
	fillString(details, member.Details)
	fillString(notice, member.Notice)
	applyParams(member.Params, params)
}

func applyParams(docs map[string]string, params []pkgmodel.ParamDoc) {
	if len(docs) == 0 {
		return
	}
	for i := range params {
		if params[i].Doc != "" && params[i].Doc != "-" {
			continue
		}
		if doc, ok := docs[params[i].Name]; ok && doc != "" {
			params[i].Doc = doc
		}
	}
}

// fillString sets dst only when the source documentation left it empty.
func fillString(dst *string, value string) {
	if *dst == "" && value != "" {
		*dst = value
	}
}
