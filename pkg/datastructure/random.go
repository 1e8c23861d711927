package datastructure

import "golang.org/x/exp/rand"

var itemWeights = [3][2]int{{1, 0}, {0, 1}, {1, 1}}

// RandomItems draws n items with weights uniformly from (1,0), (0,1), (1,1) and
// profits uniformly from [1, maxProfit].
func RandomItems(rd *rand.Rand, n, maxProfit int) []Item {
	items := make([]Item, n)
	for i := range items {
		w := itemWeights[rd.Intn(len(itemWeights))]
		items[i] = NewItem(1+rd.Intn(maxProfit), w[0], w[1])
	}
	return items
}
