package fakeservice

type regionNames struct {
	male     []string
	female   []string
	surnames []string
}

var regions = map[string]regionNames{
	"Romania": {
		male:     []string{"Andrei", "Mihai", "Ionuț", "Alexandru", "Cristian", "Florin"},
		female:   []string{"Ioana", "Elena", "Maria", "Andreea", "Alina", "Cristina"},
		surnames: []string{"Popescu", "Ionescu", "Dumitru", "Stan", "Stoica", "Gheorghe"},
	},
	"United States": {
		male:     []string{"James", "John", "Robert", "Michael", "William", "David"},
		female:   []string{"Mary", "Patricia", "Jennifer", "Linda", "Elizabeth", "Susan"},
		surnames: []string{"Smith", "Johnson", "Williams", "Brown", "Jones", "Miller"},
	},
	"Germany": {
		male:     []string{"Lukas", "Jonas", "Felix", "Paul", "Leon", "Maximilian"},
		female:   []string{"Anna", "Lena", "Sophie", "Marie", "Laura", "Julia"},
		surnames: []string{"Müller", "Schmidt", "Schneider", "Fischer", "Weber", "Becker"},
	},
}

func regionNamesList() []string {
	ret := make([]string, 0, len(regions))
	for name := range regions {
		ret = append(ret, name)
	}
	return ret
}
