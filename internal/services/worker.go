package services

import (
	"context"
	"log"
	"sync"

	"alfredoptarigan/resume-analyzer/internal/models"
)

type AnalysisRequest struct {
	Resume         models.RawDocument
	JobDescription string
	TopN           int
}

// AnalysisPool runs analyses on a fixed number of goroutines so a host can
// cap the CPU spent on concurrent requests.
type AnalysisPool interface {
	Start(ctx context.Context)
	Stop()
	Submit(ctx context.Context, req AnalysisRequest) (*models.AnalysisResult, error)
}

type analysisJob struct {
	ctx  context.Context
	req  AnalysisRequest
	done chan analysisOutcome
}

type analysisOutcome struct {
	result *models.AnalysisResult
	err    error
}

type analysisPool struct {
	analyzer    AnalyzerService
	jobQueue    chan analysisJob
	concurrency int
	wg          sync.WaitGroup
	stopChan    chan struct{}
	stopOnce    sync.Once
}

func NewAnalysisPool(analyzer AnalyzerService, concurrency, queueSize int) AnalysisPool {
	if concurrency <= 0 {
		concurrency = 1
	}
	if queueSize <= 0 {
		queueSize = 100
	}

	return &analysisPool{
		analyzer:    analyzer,
		jobQueue:    make(chan analysisJob, queueSize),
		concurrency: concurrency,
		stopChan:    make(chan struct{}),
	}
}

// Start implements AnalysisPool.
func (p *analysisPool) Start(ctx context.Context) {
	log.Printf("🚀 Starting analysis pool with %d workers\n", p.concurrency)

	for i := 0; i < p.concurrency; i++ {
		p.wg.Add(1)
		go p.processJobs(ctx, i+1)
	}
}

// Stop implements AnalysisPool. It is safe to call more than once.
func (p *analysisPool) Stop() {
	p.halt()
	p.wg.Wait()
}

// halt closes stopChan once, whether Stop was called or the Start context ended.
func (p *analysisPool) halt() {
	p.stopOnce.Do(func() {
		log.Println("🛑 Stopping analysis pool...")
		close(p.stopChan)
	})
}

// Submit implements AnalysisPool. It blocks until the analysis finishes, ctx
// is done or the pool stops.
func (p *analysisPool) Submit(ctx context.Context, req AnalysisRequest) (*models.AnalysisResult, error) {
	job := analysisJob{
		ctx:  ctx,
		req:  req,
		done: make(chan analysisOutcome, 1),
	}

	select {
	case <-p.stopChan:
		return nil, ErrPoolStopped
	default:
	}

	select {
	case p.jobQueue <- job:
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-p.stopChan:
		return nil, ErrPoolStopped
	}

	select {
	case out := <-job.done:
		return out.result, out.err
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-p.stopChan:
		return nil, ErrPoolStopped
	}
}

func (p *analysisPool) processJobs(ctx context.Context, workerID int) {
	defer p.wg.Done()

	for {
		select {
		case <-p.stopChan:
			log.Printf("👷 Worker #%d stopped\n", workerID)
			return
		case <-ctx.Done():
			log.Printf("👷 Worker #%d stopped: %v\n", workerID, ctx.Err())
			p.halt()
			return
		case job := <-p.jobQueue:
			if ctx.Err() != nil {
				p.halt()
				job.done <- analysisOutcome{err: ErrPoolStopped}
				return
			}
			result, err := p.analyzer.Analyze(job.ctx, job.req.Resume, job.req.JobDescription, job.req.TopN)
			if err != nil {
				log.Printf("❌ Worker #%d analysis failed: %v\n", workerID, err)
			} else {
				log.Printf("✅ Worker #%d completed analysis %s (score %.2f)\n", workerID, result.ID, result.Score)
			}
			job.done <- analysisOutcome{result: result, err: err}
		}
	}
}
