// Package dilemma simulates an iterated prisoner's dilemma among a fixed
// population of agents. Every epoch each agent meets every other agent
// exactly once; the pair commit to their actions simultaneously, are
// scored from a fixed payoff matrix, and are then told what the other
// did so that adaptive strategies can respond in later epochs.
package dilemma
