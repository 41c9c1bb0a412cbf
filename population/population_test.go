package population_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cclust/population"
	"github.com/katalvlaran/cclust/solution"
)

func TestRandomPopulation(t *testing.T) {
	p := gridProblem(t, 20, 3)
	pop := population.Random(p, 10, newRNG())
	require.Equal(t, 10, pop.Len())
	assert.True(t, pop.AllUncached())
	for _, s := range pop.Individuals() {
		assert.True(t, s.IsValid())
	}

	assert.Equal(t, 10, pop.EvaluateAll())
	assert.Zero(t, pop.EvaluateAll())
	assert.False(t, pop.AllUncached())
}

func TestBestAndWorst(t *testing.T) {
	p := gridProblem(t, 8, 2)
	rng := newRNG()
	pop := population.Random(p, 12, rng)

	best := pop.Best()
	assert.Equal(t, 12, best.Evaluations)
	worst := pop.Worst()
	assert.Zero(t, worst.Evaluations)

	for _, s := range pop.Individuals() {
		assert.GreaterOrEqual(t, s.Fitness(), pop.At(best.Value).Fitness())
		assert.LessOrEqual(t, s.Fitness(), pop.At(worst.Value).Fitness())
	}

	assert.Panics(t, func() { population.New().Best() })
}

func TestSelectBinaryTournament(t *testing.T) {
	p := gridProblem(t, 20, 3)
	rng := newRNG()
	pop := population.Random(p, 10, rng)

	res := pop.SelectBinaryTournament(2, rng)
	require.Equal(t, 2, res.Value.Len())
	assert.LessOrEqual(t, res.Evaluations, 4)

	full := pop.SelectBinaryTournament(10, rng)
	assert.Equal(t, 10, full.Value.Len())
	for _, s := range full.Value.Individuals() {
		assert.GreaterOrEqual(t, pop.Contains(s), 0, "winners come from the population")
	}

	pop.EvaluateAll()
	again := pop.SelectBinaryTournament(10, rng)
	assert.Zero(t, again.Evaluations)
}

func TestSelectionNeverPicksStrictWorstAlone(t *testing.T) {
	p := gridProblem(t, 10, 2)
	rng := newRNG()
	pop := population.Random(p, 2, rng)
	if pop.At(0).Fitness() == pop.At(1).Fitness() {
		t.Skip("tied fixture")
	}
	worst := pop.Worst().Value
	best := pop.Best().Value

	Repeat(t, 200, func(t *testing.T) {
		sel := pop.SelectBinaryTournament(1, rng).Value.At(0)
		if sel == pop.At(worst) {
			return
		}
		assert.Same(t, pop.At(best), sel)
	})
}

func TestCrossover(t *testing.T) {
	p := gridProblem(t, 30, 3)
	rng := newRNG()
	pop := population.Random(p, 10, rng)
	pop.EvaluateAll()

	for name, cross := range map[string]func(float64) *population.Population{
		"uniform": func(pc float64) *population.Population {
			r := pop.CrossUniform(pc, rng)
			assert.Zero(t, r.Evaluations)
			return r.Value
		},
		"segment": func(pc float64) *population.Population {
			r := pop.CrossSegment(pc, rng)
			assert.Zero(t, r.Evaluations)
			return r.Value
		},
	} {
		t.Run(name, func(t *testing.T) {
			out := cross(0.7)
			require.Equal(t, pop.Len(), out.Len())
			for i := 0; i < 6; i++ {
				assert.False(t, out.At(i).Cached(), "child %d is unevaluated", i)
				assert.True(t, out.At(i).IsValid())
			}
			for i := 7; i < 10; i++ {
				assert.Same(t, pop.At(i), out.At(i), "individual %d is not crossed", i)
			}
			assert.Same(t, pop.At(6), out.At(6), "unpaired trailing individual is kept")

			none := cross(0)
			for i := 0; i < pop.Len(); i++ {
				assert.Same(t, pop.At(i), none.At(i))
			}
		})
	}
}

func TestMutateCount(t *testing.T) {
	p := gridProblem(t, 20, 3)
	rng := newRNG()
	pop := population.Random(p, 10, rng)

	out := pop.MutateCount(3, rng)
	changed := 0
	for i := 0; i < pop.Len(); i++ {
		if !out.At(i).Equal(pop.At(i)) {
			changed++
		}
		assert.True(t, out.At(i).IsValid())
	}
	assert.GreaterOrEqual(t, changed, 1)
	assert.LessOrEqual(t, changed, 3)

	same := pop.MutateCount(0, rng)
	for i := 0; i < pop.Len(); i++ {
		assert.Same(t, pop.At(i), same.At(i))
	}
}

func TestMutateWithProbability(t *testing.T) {
	p := gridProblem(t, 20, 3)
	rng := newRNG()
	pop := population.Random(p, 10, rng)

	all := pop.MutateWithProbability(1, rng)
	for i := 0; i < pop.Len(); i++ {
		assert.False(t, all.At(i).Equal(pop.At(i)))
	}
	none := pop.MutateWithProbability(0, rng)
	for i := 0; i < pop.Len(); i++ {
		assert.Same(t, pop.At(i), none.At(i))
	}
}

func TestPreserveBestPastParent(t *testing.T) {
	p := gridProblem(t, 12, 2)
	rng := newRNG()
	prev := population.Random(p, 6, rng)
	bestIdx := prev.Best().Value
	elite := prev.At(bestIdx)

	var fresh []*solution.Solution
	for len(fresh) < 6 {
		s := solution.Random(p, rng)
		if !s.Equal(elite) {
			fresh = append(fresh, s)
		}
	}
	next := population.New(fresh...)

	res := next.PreserveBestPastParent(prev)
	assert.Zero(t, res.Evaluations, "previous generation is already evaluated")
	assert.Same(t, elite, res.Value.At(bestIdx))
	assert.NotSame(t, elite, next.At(bestIdx), "receiver is unchanged")

	kept := population.New(append(fresh[:5:5], elite.Clone())...)
	res = kept.PreserveBestPastParent(prev)
	for i := 0; i < kept.Len(); i++ {
		assert.Same(t, kept.At(i), res.Value.At(i), "elite already present")
	}
}

func TestCompeteWithNewIndividuals(t *testing.T) {
	p := gridProblem(t, 12, 2)
	rng := newRNG()
	pop := population.Random(p, 6, rng)
	pop.EvaluateAll()
	worstIdx := pop.Worst().Value
	worstFitness := pop.At(worstIdx).Fitness()

	var better, worse *solution.Solution
	for better == nil || worse == nil {
		s := solution.Random(p, rng)
		switch f := s.Fitness(); {
		case f < worstFitness && better == nil:
			better = s
		case f > worstFitness && worse == nil:
			worse = s
		}
	}
	res := pop.CompeteWithNewIndividuals(population.New(worse))
	for i := 0; i < pop.Len(); i++ {
		assert.Same(t, pop.At(i), res.Value.At(i), "a worse child never enters")
	}

	res = pop.CompeteWithNewIndividuals(population.New(better))
	assert.Same(t, better, res.Value.At(worstIdx))
	assert.Zero(t, res.Evaluations, "fixtures were evaluated beforehand")

	fresh := mustNew(t, p, better.Assignment())
	res = pop.CompeteWithNewIndividuals(population.New(fresh))
	assert.Equal(t, 1, res.Evaluations)
}

func TestSoftLocalSearchModes(t *testing.T) {
	p := gridProblem(t, 20, 3)
	rng := newRNG()
	pop := population.Random(p, 10, rng)
	pop.EvaluateAll()

	for _, mode := range []population.RefineMode{population.RefineAll, population.RefineRandom, population.RefineElitist} {
		t.Run(mode.String(), func(t *testing.T) {
			res := pop.SoftLocalSearch(mode, 0.1, 2, rng, 1_000_000)
			require.Equal(t, pop.Len(), res.Value.Len())

			touched := 0
			for i := 0; i < pop.Len(); i++ {
				assert.True(t, res.Value.At(i).IsValid())
				assert.LessOrEqual(t, res.Value.At(i).Fitness(), pop.At(i).Fitness()+1e-12)
				if res.Value.At(i) != pop.At(i) {
					touched++
				}
			}
			if mode == population.RefineAll {
				assert.Equal(t, pop.Len(), touched)
			} else {
				assert.Equal(t, 1, touched)
			}
			if mode == population.RefineElitist {
				best := pop.Best().Value
				assert.NotSame(t, pop.At(best), res.Value.At(best))
			}
		})
	}

	spent := pop.SoftLocalSearch(population.RefineAll, 1, 2, rng, 0)
	assert.Zero(t, spent.Evaluations)
	assert.Equal(t, "unknown", population.RefineMode(7).String())
}
