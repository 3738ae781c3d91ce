// Package mixture fits finite mixtures of spherical distributions
// (PKBD or spherical Cauchy) to directional data with the EM
// algorithm, and turns fitted models into posteriors and cluster
// assignments.
//
// 🚀 How it works
//
//	Fit alternates the classic two steps over unit-vector rows of X:
//
//	  E-step — per-row responsibilities by a log-sum-exp softmax of
//	           component log densities plus log mixing weights;
//	  M-step — per-component weighted maximum likelihood via
//	           pkbd.MStep / spcauchy.MStep.
//
//	Components whose mixing weight falls below MinWeight are pruned
//	during the run (the surviving weights are renormalized), so the
//	fitted model may end with fewer components than requested — an
//	intentional guard against empty clusters.
//
// ✨ Surface:
//   - Fit            — EM from a deterministic seeded initialization
//   - Model.Posterior — responsibilities for new data
//   - Model.Assign    — hard cluster labels (argmax posterior)
//   - Model.LogLikelihood — total model evidence on a data set
//   - Model.SaveTrace — PNG of the log-likelihood trajectory
//
// Everything is deterministic given Options.Seed: no global state, no
// implicit randomness.
package mixture
