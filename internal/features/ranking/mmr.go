package ranking

// Jaccard returns |A∩B| / |A∪B| for two tag sets, 0 when either is empty.
// Duplicate tags collapse.
func Jaccard(a, b []string) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}

	setA := make(map[string]struct{}, len(a))
	for _, tag := range a {
		setA[tag] = struct{}{}
	}
	setB := make(map[string]struct{}, len(b))
	for _, tag := range b {
		setB[tag] = struct{}{}
	}

	intersection := 0
	for tag := range setA {
		if _, ok := setB[tag]; ok {
			intersection++
		}
	}

	union := len(setA) + len(setB) - intersection
	return float64(intersection) / float64(union)
}

// SelectDiverse applies maximal marginal relevance over the top
// n*poolFactor scored candidates: each round picks the candidate maximizing
// lambda*relevance - (1-lambda)*maxSimilarityToSelected, with ties broken by
// pool order. Candidates outside the pool are never reachable. Requesting
// more than the pool holds returns the whole pool, greedily ordered.
// Pure function: the input slice is not modified.
func SelectDiverse(candidates []ScoredHook, n int, lambda float64, poolFactor int) []ScoredHook {
	if n <= 0 || len(candidates) == 0 {
		return []ScoredHook{}
	}
	if poolFactor < 1 {
		poolFactor = 1
	}

	poolSize := n * poolFactor
	if poolSize > len(candidates) {
		poolSize = len(candidates)
	}
	pool := make([]ScoredHook, poolSize)
	copy(pool, candidates[:poolSize])

	selected := make([]ScoredHook, 0, n)
	remaining := pool

	for len(selected) < n && len(remaining) > 0 {
		bestIdx := 0
		bestScore := mmrScore(remaining[0], selected, lambda)

		for i := 1; i < len(remaining); i++ {
			score := mmrScore(remaining[i], selected, lambda)
			if score > bestScore {
				bestIdx = i
				bestScore = score
			}
		}

		selected = append(selected, remaining[bestIdx])
		remaining = append(remaining[:bestIdx], remaining[bestIdx+1:]...)
	}

	return selected
}

func mmrScore(candidate ScoredHook, selected []ScoredHook, lambda float64) float64 {
	simToSelected := 0.0
	for _, s := range selected {
		if sim := Jaccard(candidate.Hook.Tags, s.Hook.Tags); sim > simToSelected {
			simToSelected = sim
		}
	}
	return lambda*candidate.Score - (1-lambda)*simToSelected
}
