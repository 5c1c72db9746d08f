package service

import (
	"log"

	"github.com/niktin06sash/MicroserviceProject/PhotoLike_service/internal/metrics"
)

func (use *PhotoLikeServiceImplement) taskWorker(i int) {
	defer use.wg.Done()
	for {
		select {
		case task, ok := <-use.Task_queue:
			if !ok {
				log.Printf("[INFO] [PhotoLike-Service] [Worker: %v] Task channel closed, stopping worker", i)
				return
			}
			metrics.PhotoLikeTaskQueueSize.Set(float64(len(use.Task_queue)))
			task()
		case <-use.closechan:
			return
		}
	}
}

// StopWorkers runs the tasks still queued and waits for the workers.
func (use *PhotoLikeServiceImplement) StopWorkers() {
	use.stopOnce.Do(func() {
		close(use.Task_queue)
		if use.wg != nil {
			use.wg.Wait()
		}
		if use.closechan != nil {
			close(use.closechan)
		}
	})
	log.Printf("[DEBUG] [PhotoLike-Service] Successful stop task-workers")
}
