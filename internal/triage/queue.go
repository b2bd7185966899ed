package triage

import (
	"fmt"
	"iter"
)

// Queue is the emergency-room waiting list: a binary min-heap of patients
// ordered by Patient.Compare, stored as an implicit tree in a slice.
//
// Queue is not safe for concurrent use. Callers that share a queue between
// goroutines must guard every call with a single lock.
type Queue struct {
	patients []Patient

	// next arrival number, starts at 1 and is never reused
	nextArrival int
}

// Change describes a successful priority update.
type Change struct {
	Name    string
	Arrival int
	From    Severity
	To      Severity
}

// String returns the message shown to the operator after a change
func (c Change) String() string {
	return fmt.Sprintf("Changed patient %s's priority from %s to %s", c.Name, c.From, c.To)
}

// New creates an empty queue whose first admission gets arrival number 1.
func New() *Queue {
	return &Queue{nextArrival: 1}
}

// Admit adds a patient with the given severity label and returns the created
// record. The queue is left untouched if the label is invalid.
func (q *Queue) Admit(label, name string) (Patient, error) {
	severity, err := ParseSeverity(label)
	if err != nil {
		return Patient{}, err
	}

	p := NewPatient(severity, name, q.nextArrival)
	q.nextArrival++

	q.patients = append(q.patients, p)
	q.siftUp(len(q.patients) - 1)

	return p, nil
}

// Peek returns the patient that will be called next without removing it.
func (q *Queue) Peek() (Patient, error) {
	if len(q.patients) == 0 {
		return Patient{}, ErrEmptyQueue
	}
	return q.patients[0], nil
}

// Remove takes the highest priority patient off the queue and returns it.
func (q *Queue) Remove() (Patient, error) {
	n := len(q.patients)
	if n == 0 {
		return Patient{}, ErrEmptyQueue
	}

	top := q.patients[0]
	if n == 1 {
		q.patients = q.patients[:0]
		return top, nil
	}

	q.patients[0] = q.patients[n-1]
	q.patients[n-1] = Patient{}
	q.patients = q.patients[:n-1]

	if len(q.patients) > 1 {
		q.siftDown(0)
	}
	return top, nil
}

// Size returns the number of waiting patients
func (q *Queue) Size() int {
	return len(q.patients)
}

// All returns the waiting patients in heap order. Only the first element is
// guaranteed to be the next one called. Each iteration reads the queue as it
// is at that moment.
func (q *Queue) All() iter.Seq[Patient] {
	return func(yield func(Patient) bool) {
		for i := 0; i < len(q.patients); i++ {
			if !yield(q.patients[i]) {
				return
			}
		}
	}
}

// UpdatePriority changes the severity of the patient with the given arrival
// number and repairs the heap around it.
func (q *Queue) UpdatePriority(arrival int, label string) (Change, error) {
	severity, err := ParseSeverity(label)
	if err != nil {
		return Change{}, err
	}

	i := q.indexOf(arrival)
	if i < 0 {
		return Change{}, fmt.Errorf("%w: arrival %d", ErrPatientNotFound, arrival)
	}

	old := q.patients[i]
	q.patients[i] = old.withSeverity(severity)

	if severity.Rank() < old.Severity().Rank() {
		q.siftUp(i)
	} else {
		q.siftDown(i)
	}

	return Change{
		Name:    old.Name(),
		Arrival: arrival,
		From:    old.Severity(),
		To:      severity,
	}, nil
}

// indexOf returns the heap index of the first patient with the given arrival
// number, or -1.
func (q *Queue) indexOf(arrival int) int {
	for i, p := range q.patients {
		if p.Arrival() == arrival {
			return i
		}
	}
	return -1
}

func parent(i int) int { return (i - 1) / 2 }
func left(i int) int   { return 2*i + 1 }
func right(i int) int  { return 2*i + 2 }

func (q *Queue) swap(i, j int) {
	q.patients[i], q.patients[j] = q.patients[j], q.patients[i]
}

// siftUp moves the element at i towards the root while its parent would be
// called after it.
func (q *Queue) siftUp(i int) {
	for i > 0 {
		p := parent(i)
		if q.patients[p].Compare(q.patients[i]) <= 0 {
			return
		}
		q.swap(p, i)
		i = p
	}
}

// siftDown moves the element at i towards the leaves while one of its
// children would be called before it. Ties between children go left.
func (q *Queue) siftDown(i int) {
	n := len(q.patients)
	for {
		l, r := left(i), right(i)
		if l >= n {
			return
		}

		child := l
		if r < n && q.patients[r].Compare(q.patients[l]) < 0 {
			child = r
		}

		if q.patients[child].Compare(q.patients[i]) >= 0 {
			return
		}
		q.swap(child, i)
		i = child
	}
}
