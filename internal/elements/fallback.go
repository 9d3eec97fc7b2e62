package elements

// fallbackElements is the built-in minimal dataset used when the upstream
// source is unavailable. It spans multiple categories and phases so the
// grid, legend, filters, and details panel all remain exercisable.
func fallbackElements() []Element {
	return []Element{
		{
			Number: 1, Symbol: "H", Name: "Hydrogen",
			Period: 1, Group: 1, XPos: 1, YPos: 1,
			Category: "diatomic nonmetal", AtomicMass: 1.008,
			Phase: "gas", ElectronConfiguration: "1s1",
			Summary: "Hydrogen is the lightest and most abundant chemical element in the universe.",
		},
		{
			Number: 2, Symbol: "He", Name: "Helium",
			Period: 1, Group: 18, XPos: 18, YPos: 1,
			Category: "noble gas", AtomicMass: 4.0026,
			Phase: "gas", ElectronConfiguration: "1s2",
			Summary: "Helium is a colorless, odorless, inert monatomic gas.",
		},
		{
			Number: 3, Symbol: "Li", Name: "Lithium",
			Period: 2, Group: 1, XPos: 1, YPos: 2,
			Category: "alkali metal", AtomicMass: 6.94,
			Phase: "solid", ElectronConfiguration: "[He] 2s1",
			Summary: "Lithium is a soft, silvery-white alkali metal.",
		},
		{
			Number: 6, Symbol: "C", Name: "Carbon",
			Period: 2, Group: 14, XPos: 14, YPos: 2,
			Category: "polyatomic nonmetal", AtomicMass: 12.011,
			Phase: "solid", ElectronConfiguration: "[He] 2s2 2p2",
			Summary: "Carbon forms more compounds than any other element.",
		},
		{
			Number: 8, Symbol: "O", Name: "Oxygen",
			Period: 2, Group: 16, XPos: 16, YPos: 2,
			Category: "diatomic nonmetal", AtomicMass: 15.999,
			Phase: "gas", ElectronConfiguration: "[He] 2s2 2p4",
			Summary: "Oxygen is a highly reactive nonmetal and oxidizing agent.",
		},
	}
}

// FallbackDataset returns the built-in dataset, flagged as a fallback.
func FallbackDataset() *Dataset {
	ds := NewDataset(fallbackElements())
	ds.Fallback = true
	return ds
}
