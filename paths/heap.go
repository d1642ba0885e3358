package paths

// A hand-rolled binary heap over *pathNode, avoiding the interface{}
// boxing container/heap would impose on every push/pop. Adapted from the
// classic sift-up/sift-down pair; ranks break ties by insertion sequence
// so iteration order stays deterministic for equal-cost nodes.

type priorityQueue []*pathNode

func (pq priorityQueue) Len() int { return len(pq) }

func (pq priorityQueue) Less(i, j int) bool {
	return pq[i].rank < pq[j].rank || (pq[i].rank == pq[j].rank && pq[i].seq < pq[j].seq)
}

func (pq priorityQueue) Swap(i, j int) {
	pq[i], pq[j] = pq[j], pq[i]
	pq[i].queueIndex = i
	pq[j].queueIndex = j
}

func pqPush(pq *priorityQueue, n *pathNode) {
	n.queueIndex = len(*pq)
	*pq = append(*pq, n)
	siftUp(*pq, len(*pq)-1)
}

func pqPop(pq *priorityQueue) *pathNode {
	old := *pq
	n := len(old) - 1
	old.Swap(0, n)
	siftDown(old, 0, n)
	node := old[n]
	node.queueIndex = -1
	*pq = old[:n]
	return node
}

func pqRemove(pq *priorityQueue, i int) {
	old := *pq
	n := len(old) - 1
	if n != i {
		old.Swap(i, n)
		if !siftDown(old, i, n) {
			siftUp(old, i)
		}
	}
	old[n].queueIndex = -1
	*pq = old[:n]
}

func siftUp(pq priorityQueue, j int) {
	for {
		i := (j - 1) / 2
		if i == j || !pq.Less(j, i) {
			break
		}
		pq.Swap(i, j)
		j = i
	}
}

func siftDown(pq priorityQueue, i0, n int) bool {
	i := i0
	for {
		j1 := 2*i + 1
		if j1 >= n || j1 < 0 {
			break
		}
		j := j1
		if j2 := j1 + 1; j2 < n && pq.Less(j2, j1) {
			j = j2
		}
		if !pq.Less(j, i) {
			break
		}
		pq.Swap(i, j)
		i = j
	}
	return i > i0
}
