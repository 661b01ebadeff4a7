// Test program to demonstrate entity document round-tripping
// This shows factory construction and dump JSON encode/decode working
package main

import (
	"fmt"
	"strings"

	"github.com/ppiankov/wikibase/internal/model"
	"github.com/ppiankov/wikibase/internal/wire"
)

func main() {
	fmt.Println("=== Entity Document Round-Trip Test ===")
	fmt.Println()

	factory := wire.NewFactory()

	subject, err := factory.ItemID("Q42", wire.DefaultSiteIRI)
	if err != nil {
		fmt.Printf("item id error: %v\n", err)
		return
	}
	instanceOf, _ := factory.PropertyID("P31", wire.DefaultSiteIRI)
	human, _ := factory.ItemID("Q5", wire.DefaultSiteIRI)

	mainSnak, err := factory.ValueSnak(instanceOf, human)
	if err != nil {
		fmt.Printf("value snak error: %v\n", err)
		return
	}
	fmt.Printf("Inferred datatype for entity value: %q\n", mainSnak.Datatype())

	claim, err := factory.Claim(subject, mainSnak, nil)
	if err != nil {
		fmt.Printf("claim error: %v\n", err)
		return
	}
	id, _ := factory.FreshStatementID(subject)
	statement, err := factory.Statement(claim, nil, model.RankNormal, id)
	if err != nil {
		fmt.Printf("statement error: %v\n", err)
		return
	}
	group, err := factory.StatementGroup([]model.Statement{statement})
	if err != nil {
		fmt.Printf("statement group error: %v\n", err)
		return
	}

	label, _ := factory.MonolingualText("Douglas Adams", "en")
	doc, err := factory.ItemDocument(subject,
		[]model.MonolingualTextValue{label}, nil, nil,
		[]model.StatementGroup{group}, nil, 0)
	if err != nil {
		fmt.Printf("item document error: %v\n", err)
		return
	}

	data, err := doc.MarshalJSON()
	if err != nil {
		fmt.Printf("marshal error: %v\n", err)
		return
	}
	fmt.Println(strings.Repeat("-", 60))
	fmt.Printf("Serialized: %s\n", data)
	fmt.Println(strings.Repeat("-", 60))

	reread, err := wire.UnmarshalEntityDocument(data)
	if err != nil {
		fmt.Printf("unmarshal error: %v\n", err)
		return
	}

	item := reread.(*wire.ItemDocument)
	fmt.Printf("Re-read entity: %s\n", item.EntityID().ID())
	fmt.Printf("Label (en): %s\n", item.Labels()["en"].Text())
	for _, g := range item.StatementGroups() {
		fmt.Printf("Statement group %s with %d statement(s)\n", g.Property().ID(), len(g.Statements()))
		for _, st := range g.Statements() {
			if equal := model.StatementsEqual(st, statement); equal {
				fmt.Println("  ✓ statement survived the round trip")
			} else {
				fmt.Println("  ✗ statement changed in the round trip")
			}
		}
	}

	fmt.Println()
	fmt.Println("=== Test Complete ===")
}
